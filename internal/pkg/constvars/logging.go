package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingSessionDataKey   = "session_data"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingUserIDKey        = "user_id"
	LoggingDonorIDKey       = "donor_id"
	LoggingFacilityIDKey    = "facility_id"
	LoggingBloodRequestKey  = "blood_request_id"
	LoggingBloodTypeKey     = "blood_type"
	LoggingRecipientKey     = "recipient_id"
	LoggingRecipientCount   = "recipient_count"
	LoggingNotificationKey  = "notification_id"
	LoggingQueueNameKey     = "queue"
	LoggingConnectionsKey   = "connections"
)
