package constvars

// Client-facing messages. These go over the wire; keep them free of
// internals.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "We cannot process your request, please check your input"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"

	ErrClientInvalidLocation        = "The request location is missing or invalid"
	ErrClientInvalidQuantity        = "The requested quantity must be a positive number of units"
	ErrClientRequestNotFound        = "The blood request could not be found"
	ErrClientRequestNoLongerActive  = "This request is no longer open, another donor may have accepted it"
	ErrClientInvalidTransition      = "The request cannot change from '%s' to '%s'"
	ErrClientNoRecipient            = "This request is a broadcast and has no addressed recipient"
	ErrClientNoActiveAcceptance     = "No active acceptance found for this donor"
	ErrClientNotificationNotFound   = "The notification could not be found"
	ErrClientDonorNotFound          = "The donor could not be found"
	ErrClientInvalidImageFormat     = "The uploaded image format is not supported"
	ErrClientImageTooLarge          = "The uploaded image exceeds the allowed size"
)

// Developer messages, logged and shown only outside production.
const (
	ErrDevCannotParseJSON        = "Failed to parse JSON body"
	ErrDevValidationFailed       = "Request payload validation failed"
	ErrDevURLParamMissing        = "Missing URL parameter: %s"
	ErrDevServerDeadlineExceeded = "Server deadline exceeded while processing the request"
	ErrDevServerProcess          = "Unexpected server error while processing the request"
	ErrDevServerParseSessionData = "Failed to parse session data from context"

	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthInvalidSession        = "Session not found or expired"
	ErrDevAuthRoleMismatch          = "Session role does not permit this endpoint"

	ErrDevRequestMissingLocation     = "Blood request has no usable GeoJSON point"
	ErrDevRequestInvalidQuantity     = "QuantityNeeded must be >= 1"
	ErrDevRequestNotFound            = "Blood request document not found"
	ErrDevRequestNoLongerActive      = "Conditional accept matched no pending document"
	ErrDevRequestInvalidTransition   = "Illegal status transition attempted"
	ErrDevRequestNoRecipient         = "Reject called on a broadcast request"
	ErrDevRequestNotOwner            = "Caller is not the owner of the request"
	ErrDevRequestNotAddressedDonor   = "Caller is not the addressed recipient of the direct request"
	ErrDevVerificationNoAcceptance   = "No acceptance record with sub-status accepted matched the verification"
	ErrDevNotificationNotFound       = "Notification document not found"
	ErrDevNotificationNotOwner       = "Caller does not own the notification"
	ErrDevDonorNotFound              = "Donor document not found"
	ErrDevImageValidationFailed      = "Profile picture validation failed"

	ErrDevDBFailedToFindDocument     = "MongoDB: failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB: failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB: failed to update document"
	ErrDevDBFailedToDeleteDocument   = "MongoDB: failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB: failed to iterate cursor"
	ErrDevDBStringNotObjectID        = "MongoDB: string is not a valid ObjectID"
	ErrDevDBFailedToEnsureIndexes    = "MongoDB: failed to create indexes"

	ErrDevRedisGetNoData     = "Redis: no data for key %s"
	ErrDevRedisGetData       = "Redis: failed to get data"
	ErrDevRedisSetData       = "Redis: failed to set data"
	ErrDevRedisDeleteData    = "Redis: failed to delete data"
	ErrDevCannotMarshalJSON  = "Failed to marshal value to JSON"

	ErrDevRabbitMQPublish     = "RabbitMQ: failed to publish message to queue %s"
	ErrDevRabbitMQOpenChannel = "RabbitMQ: failed to open channel"

	ErrDevMinioFailedToCreateObject = "Minio: failed to create object in bucket %s"

	ErrDevWebSocketUpgrade = "Failed to upgrade connection to WebSocket"
	ErrDevWebSocketWrite   = "Failed to write message to WebSocket connection"
)
