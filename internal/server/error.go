package server

import "stegex/api"

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
)
