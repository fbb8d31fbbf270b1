package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/shared/dto"
	"hotel/shared/model"
)

type stay struct {
	ID        string `db:"id"`
	RoomType  string `db:"room_type"`
	GuestName string `db:"guest_name" table:"users" column:"full_name"`
	Ignored   string
	Internal  string `db:"-"`
	model.Metadata
}

func (stay) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = stays.user_id"
}

func newStayRepository() Repository[stay] {
	return NewRepository[stay]("stay", "stays", "id", nil, otelMocks.NewOtel())
}

func TestNewRepository_Columns(t *testing.T) {
	repo := newStayRepository()

	assert.Equal(t, []string{"id", "room_type", "created_at", "modified_at", "created_by", "modified_by"}, repo.insertColumns)
	assert.Equal(t, "LEFT JOIN users ON users.id = stays.user_id", repo.join)
	assert.Equal(t,
		"stays.id, stays.room_type, users.full_name AS guest_name, stays.created_at, stays.modified_at, stays.created_by, stays.modified_by",
		repo.selectList(),
	)
}

func TestSelectList_Narrowed(t *testing.T) {
	repo := newStayRepository()

	assert.Equal(t, "stays.id, stays.room_type", repo.selectList("id", "room_type"))
	assert.Equal(t, "users.full_name AS guest_name", repo.selectList("full_name"))
}

func TestWhereClause(t *testing.T) {
	repo := newStayRepository()

	where, args := repo.whereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.NotNil(t, args)

	where, args = repo.whereClause(dto.Where(dto.Eq("stays", "id", "s-1")))
	assert.Contains(t, where, "WHERE")
	assert.Contains(t, where, "stays.id = :id")
	assert.Equal(t, "s-1", args["id"])
}

func TestClassify(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "users_email_key"}

	err := classify(dup)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.ErrorIs(t, err, dup)
	assert.Contains(t, err.Error(), "users_email_key")

	other := errors.New("connection reset")
	assert.Same(t, other, classify(other))
}
