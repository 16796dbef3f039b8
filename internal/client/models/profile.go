package models

// SocialLinks are the handles shown on the profile screen.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// Set assigns handle to the named network. It returns false for an unknown
// network name.
func (s *SocialLinks) Set(network, handle string) bool {
	switch network {
	case "linkedin":
		s.LinkedIn = handle
	case "github":
		s.GitHub = handle
	case "instagram":
		s.Instagram = handle
	case "twitter":
		s.Twitter = handle
	default:
		return false
	}
	return true
}

// Profile is the free-form part of the user profile edited on the device.
type Profile struct {
	Bio         string      `json:"bio"`
	Website     string      `json:"website"`
	SocialLinks SocialLinks `json:"socialLinks"`
}
