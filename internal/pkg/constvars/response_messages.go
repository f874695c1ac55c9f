package constvars

const (
	RequestCreatedSuccess   = "Blood request created successfully"
	RequestFetchedSuccess   = "Blood request fetched successfully"
	RequestsFetchedSuccess  = "Blood requests fetched successfully"
	RequestAcceptedSuccess  = "Blood request accepted successfully"
	RequestRejectedSuccess  = "Blood request rejected successfully"
	RequestCancelledSuccess = "Blood request cancelled successfully"

	VerificationSuccess = "Donation verified and request fulfilled"

	NotificationsFetchedSuccess   = "Notifications fetched successfully"
	NotificationMarkedReadSuccess = "Notification marked as read"
	UnreadCountFetchedSuccess     = "Unread notification count fetched successfully"

	DonorAvailabilityUpdatedSuccess  = "Availability updated successfully"
	DonorProfilePictureUpdateSuccess = "Profile picture updated successfully"
)
