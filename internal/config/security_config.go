package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig maps "METHOD /route/template" to its required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Operations
	"GET /healthz": SecurityPublic,
	"GET /metrics": SecurityPublic,

	// Auth - Public
	"POST /auth/create": SecurityPublic,
	"POST /auth/token":  SecurityPublic,

	// User - Access Protected
	"GET /user/profile":  SecurityAccess,
	"POST /user/profile": SecurityAccess,
	"GET /user/clubs":    SecurityAccess,

	// Club directory - Public
	"GET /club":                       SecurityPublic,
	"GET /club/recruiting":            SecurityPublic,
	"GET /club/search":                SecurityPublic,
	"GET /club/categories/main":       SecurityPublic,
	"GET /club/categories/sub":        SecurityPublic,
	"GET /club/category/{main}":       SecurityPublic,
	"GET /club/category/{main}/{sub}": SecurityPublic,
	"GET /club/{club_id}":             SecurityPublic,

	// Application
	"GET /application/form/{club_id}":               SecurityPublic,
	"POST /application/form/{club_id}":              SecurityAccess,
	"DELETE /application/form/{club_id}":            SecurityAccess,
	"POST /application/submit/{club_id}":            SecurityAccess,
	"PUT /application/recruit/{club_id}":            SecurityAccess,
	"GET /application/applicants/{club_id}":         SecurityAccess,
	"PUT /application/admit/{club_id}/{recruit_id}": SecurityAccess,
	"PUT /application/deny/{club_id}/{recruit_id}":  SecurityAccess,
	"GET /application/members/{club_id}":            SecurityAccess,

	// Activity
	"GET /activity/schedule/{club_id}":              SecurityPublic,
	"POST /activity/schedule/{club_id}":             SecurityAccess,
	"DELETE /activity/schedule/{club_id}/{item_id}": SecurityAccess,
	"GET /activity/notice/{club_id}":                SecurityPublic,
	"POST /activity/notice/{club_id}":               SecurityAccess,
	"DELETE /activity/notice/{club_id}/{item_id}":   SecurityAccess,
	"GET /activity/artwork/{club_id}":               SecurityPublic,
	"POST /activity/artwork/{club_id}":              SecurityAccess,
	"DELETE /activity/artwork/{club_id}/{item_id}":  SecurityAccess,
	"GET /activity/artwork/image/{name}":            SecurityPublic,
	"GET /activity/description/{club_id}":           SecurityPublic,
	"PUT /activity/description/{club_id}":           SecurityAccess,
}

// GetSecurityLevel returns the level for a route key, defaulting to SecurityAccess
func GetSecurityLevel(route string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[route]; ok {
		return level
	}
	return SecurityAccess
}
