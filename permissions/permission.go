// Package permissions holds the route-level access table enforced by the
// HTTP auth and RBAC middleware.
package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is one route entry. Path is the chi route pattern including the
// /api prefix, e.g. /api/bookings/{id}.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Public reports whether the route is reachable without a token.
func (p Permission) Public() bool {
	return p.Skip
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]int
}

func routeKey(path, method string) string {
	return strings.ToUpper(method) + " " + strings.TrimSuffix(path, "/")
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]int, len(r.Endpoints))

	for i, endpoint := range r.Endpoints {
		key := routeKey(endpoint.Path, endpoint.Method)
		if _, exists := r.index[key]; exists {
			log.Warn().Str("route", key).Msg("Duplicate permission entry, keeping the first one")

			continue
		}

		r.index[key] = i
	}
}

// FindPermissions returns the entry for the route pattern and method, or the
// zero Permission when the route is not listed. Unlisted routes are not
// public and allow no role.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	key := routeKey(path, method)

	if r.index == nil {
		for _, endpoint := range r.Endpoints {
			if routeKey(endpoint.Path, endpoint.Method) == key {
				return endpoint
			}
		}

		return Permission{}
	}

	idx, ok := r.index[key]
	if !ok {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err
	}

	permissions.buildIndex()

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded route permissions")

	return permissions
}
