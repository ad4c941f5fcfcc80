package teams

// Team is an NHL club as exposed by the API and used for subscription lookups.
type Team struct {
	Abbreviation string `json:"abbrev"`
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}
