package dto

type RegisterNGORequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	Description     string   `json:"description"`
	ServiceAreas    []string `json:"service_areas"`
	Specializations []string `json:"specializations,omitempty"`
	Website         string   `json:"website,omitempty"`
	LogoURL         string   `json:"logo_url,omitempty"`
}

type UpdateNGORequest struct {
	Name            *string   `json:"name,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Description     *string   `json:"description,omitempty"`
	ServiceAreas    *[]string `json:"service_areas,omitempty"`
	Specializations *[]string `json:"specializations,omitempty"`
	Website         *string   `json:"website,omitempty"`
	LogoURL         *string   `json:"logo_url,omitempty"`
}

type VerifyNGORequest struct {
	Verified bool `json:"verified"`
}
