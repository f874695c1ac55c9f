package requests

type UpdateAvailability struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

type UploadProfilePicture struct {
	ProfilePicture string `json:"profile_picture" validate:"required"`

	// Decoded out of the base64 payload by the controller.
	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}
