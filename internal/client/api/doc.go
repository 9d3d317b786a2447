// Package api contains thin typed HTTP clients for the TerraBond backend
// services (auth, social, users). All three services answer with the same
// JSON envelope {success, message, data, timestamp}; the helpers here decode
// it once and translate failures into the client error taxonomy:
//
//   - transport failures wrap ErrUnavailable,
//   - HTTP 401 maps to common.ErrorUnauthorized,
//   - an envelope with success=false becomes an *Error carrying the
//     server-supplied display message (or a per-operation fallback).
package api
