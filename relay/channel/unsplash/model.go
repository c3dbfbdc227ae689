package unsplash

type SearchResponse struct {
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Results    []Photo `json:"results"`
}

type Photo struct {
	Id   string    `json:"id"`
	Urls PhotoUrls `json:"urls"`
	User *User     `json:"user,omitempty"`
}

type PhotoUrls struct {
	Raw     string `json:"raw,omitempty"`
	Full    string `json:"full,omitempty"`
	Regular string `json:"regular,omitempty"`
	Small   string `json:"small,omitempty"`
}

type User struct {
	Name  string     `json:"name"`
	Links *UserLinks `json:"links,omitempty"`
}

type UserLinks struct {
	Html string `json:"html"`
}

type ErrorResponse struct {
	Errors []string `json:"errors"`
}
