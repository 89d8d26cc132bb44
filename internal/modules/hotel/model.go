// README: Hotel suggestion model.
package hotel

// Hotel is one lodging recommendation. The model carries no identity field;
// display keys are derived from the name, so duplicate names are possible
// but unlikely enough to tolerate.
type Hotel struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	EstimatedPrice string `json:"estimated_price"`
	Address        string `json:"address"`
}
