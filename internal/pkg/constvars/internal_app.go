package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	RoleFacility = "facility"
	RoleDonor    = "donor"
)

const (
	MongoCollectionBloodRequests = "blood_requests"
	MongoCollectionNotifications = "notifications"
	MongoCollectionDonors        = "donors"
)

const (
	NotificationTypeRequestMatched   = "request_matched"
	NotificationTypeRequestAccepted  = "request_accepted"
	NotificationTypeRequestRejected  = "request_rejected"
	NotificationTypeRequestCancelled = "request_cancelled"
	NotificationTypeRequestFulfilled = "request_fulfilled"
)

// PushTypeRefresh carries no payload on purpose: stale broadcast feeds
// re-query instead of receiving request details they are not party to.
const (
	PushTypeRefresh = "refresh"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	ImageProfilePicturePrefix = "profile_picture"
)

const (
	NotificationTitleRequestMatched   = "Urgent blood request near you"
	NotificationTitleRequestAccepted  = "A donor accepted your request"
	NotificationTitleRequestRejected  = "Your request was declined"
	NotificationTitleRequestCancelled = "Blood request cancelled"
	NotificationTitleRequestFulfilled = "Donation completed"

	NotificationMessageRequestMatchedFormat   = "A facility nearby urgently needs %d unit(s) of %s blood."
	NotificationMessageRequestAcceptedFormat  = "A donor committed to your request for %d unit(s) of %s blood."
	NotificationMessageRequestRejectedFormat  = "The addressed donor declined your request for %s blood."
	NotificationMessageRequestCancelledFormat = "The request for %d unit(s) of %s blood was cancelled by the facility."
	NotificationMessageRequestFulfilledFormat = "Your donation for the %s blood request was verified. Thank you."
)
