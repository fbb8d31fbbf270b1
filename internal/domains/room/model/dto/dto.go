package dto

import "hotel/internal/domains/room/model"

type RoomTypeResponse struct {
	Type          string  `json:"type"`
	PricePerNight float64 `json:"pricePerNight"`
}

type GetRoomsResponse struct {
	Rooms      []RoomTypeResponse `json:"rooms"`
	TotalRooms int                `json:"totalRooms"`
}

func (r *GetRoomsResponse) FromCatalog(rates map[model.Type]float64, totalRooms int) {
	r.TotalRooms = totalRooms
	r.Rooms = make([]RoomTypeResponse, 0, len(model.Types))

	for _, roomType := range model.Types {
		r.Rooms = append(r.Rooms, RoomTypeResponse{
			Type:          string(roomType),
			PricePerNight: rates[roomType],
		})
	}
}
