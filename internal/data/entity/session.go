package entity

// Session is an authenticated customer: the bearer access token issued by the
// account store plus the profile it belongs to. The token is the only durable
// client-side auth state; a 401-class upstream response invalidates it.
type Session struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
