package constants

// Canned JSON bodies for responses that never go through a route handler.
const (
	EndpointNotFound    = `{"message":"This endpoint does not exist","context":{"type":"not_found"}}`
	ResourceNotFound    = `{"message":"This resource could not be found","context":{"type":"not_found"}}`
	BadRequest          = `{"message":"The request could not be understood by the server","context":{"type":"bad_request"}}`
	Forbidden           = `{"message":"You do not have permission to access this resource","context":{"type":"forbidden"}}`
	Unauthorized        = `{"message":"Unauthorized","context":{"type":"unauthorized"}}`
	InternalServerError = `{"message":"Something went wrong on our end","context":{"type":"internal_error"}}`
	MethodNotAllowed    = `{"message":"This method is not allowed for this endpoint","context":{"type":"method_not_allowed"}}`
	BodyRequired        = `{"message":"A request body is required for this endpoint","context":{"type":"body_required"}}`
)
