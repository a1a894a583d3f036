package dto

// SpecialtyResponse is a service projected down to its name.
type SpecialtyResponse struct {
	Name string `json:"name"`
}
