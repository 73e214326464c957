// Package api provides the HTTP REST API for the Blockfall server.
//
// Endpoints:
//
// Sessions:
//   - POST   /api/sessions               {"config_id": "classic"}
//   - GET    /api/sessions               ?sort=created|accessed&order=asc|desc&limit=n
//   - GET    /api/sessions/unified       ?sessionIds=a,b or ?configName=classic
//   - GET    /api/sessions/{id}
//   - DELETE /api/sessions/{id}
//
// Game Operations:
//   - GET  /api/sessions/{id}/state
//   - GET  /api/sessions/{id}/board     text/plain render plus a status line
//   - POST /api/sessions/{id}/action      {"action": "left", "reset": false}
//   - POST /api/sessions/{id}/bulk-action {"actions": ["left", "tick"]}
//   - POST /api/sessions/{id}/reset
//   - GET  /api/sessions/{id}/history   ?page&limit&order
//
// Configuration:
//   - GET  /api/configs
//   - POST /api/configs                 game config JSON, optional ?id=
//   - GET  /api/configs/{name}
//
// Other:
//   - GET /api/health
//   - GET /ws?session=<id>              state feed; see package websocket
//
// Actions are left, right, down, rotate and tick (aliases such as "drop"
// and "up" are accepted). Every mutation is broadcast to websocket watchers
// of the session.
//
// Errors are returned as JSON {"error": "..."}: unknown sessions and configs
// map to 404, unknown actions, invalid configs and malformed bodies to 400.
package api
