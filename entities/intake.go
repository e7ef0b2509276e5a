package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Intake is the payload for requesting a courier pickup.
type Intake struct {
	CdekNumber     string         `json:"cdek_number"`
	IntakeDate     string         `json:"intake_date"`
	IntakeTimeFrom string         `json:"intake_time_from"`
	IntakeTimeTo   string         `json:"intake_time_to"`
	LunchTimeFrom  string         `json:"lunch_time_from,omitempty"`
	LunchTimeTo    string         `json:"lunch_time_to,omitempty"`
	Name           string         `json:"name"`
	NeedCall       *bool          `json:"need_call,omitempty"`
	Comment        string         `json:"comment,omitempty"`
	Sender         map[string]any `json:"sender"`
	FromLocation   map[string]any `json:"from_location"`
	Weight         float64        `json:"weight,omitempty"`
	Length         float64        `json:"length,omitempty"`
	Width          float64        `json:"width,omitempty"`
	Height         float64        `json:"height,omitempty"`
}

var intakeRules = validation.RuleSet{
	{Attribute: "cdek_number", Kind: validation.String, Required: true},
	{Attribute: "intake_date", Kind: validation.String, Required: true},
	{Attribute: "intake_time_from", Kind: validation.String, Required: true},
	{Attribute: "intake_time_to", Kind: validation.String, Required: true},
	{Attribute: "lunch_time_from", Kind: validation.String},
	{Attribute: "lunch_time_to", Kind: validation.String},
	{Attribute: "name", Kind: validation.String, Required: true},
	{Attribute: "need_call", Kind: validation.Bool},
	{Attribute: "comment", Kind: validation.String},
	{Attribute: "sender", Kind: validation.Hash, Required: true},
	{Attribute: "from_location", Kind: validation.Hash, Required: true},
	{Attribute: "weight", Kind: validation.Float},
	{Attribute: "length", Kind: validation.Float},
	{Attribute: "width", Kind: validation.Float},
	{Attribute: "height", Kind: validation.Float},
}

// NewIntake validates a filled courier intake request.
func NewIntake(i Intake) (*Intake, error) {
	if err := validation.Validate(&i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (i *Intake) ValidationRules() validation.RuleSet { return intakeRules }

func (i *Intake) Attributes() map[string]any {
	attrs := map[string]any{
		"cdek_number":      i.CdekNumber,
		"intake_date":      i.IntakeDate,
		"intake_time_from": i.IntakeTimeFrom,
		"intake_time_to":   i.IntakeTimeTo,
		"lunch_time_from":  i.LunchTimeFrom,
		"lunch_time_to":    i.LunchTimeTo,
		"name":             i.Name,
		"comment":          i.Comment,
		"sender":           i.Sender,
		"from_location":    i.FromLocation,
	}
	if i.NeedCall != nil {
		attrs["need_call"] = *i.NeedCall
	}
	// Zero dimensions mean "not provided"; the carrier treats them as optional.
	if i.Weight != 0 {
		attrs["weight"] = i.Weight
	}
	if i.Length != 0 {
		attrs["length"] = i.Length
	}
	if i.Width != 0 {
		attrs["width"] = i.Width
	}
	if i.Height != 0 {
		attrs["height"] = i.Height
	}
	return attrs
}

// IntakeAvailableDaysRequest asks which days a courier can pick up from the
// given location.
type IntakeAvailableDaysRequest struct {
	FromLocation map[string]any `json:"from_location"`
	Date         string         `json:"date,omitempty"`
}

var intakeAvailableDaysRequestRules = validation.RuleSet{
	{Attribute: "from_location", Kind: validation.Hash, Required: true},
	{Attribute: "date", Kind: validation.String},
}

// NewIntakeAvailableDaysRequest builds a validated available-days query.
func NewIntakeAvailableDaysRequest(fromLocation map[string]any, date string) (*IntakeAvailableDaysRequest, error) {
	r := &IntakeAvailableDaysRequest{FromLocation: fromLocation, Date: date}
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *IntakeAvailableDaysRequest) ValidationRules() validation.RuleSet {
	return intakeAvailableDaysRequestRules
}

func (r *IntakeAvailableDaysRequest) Attributes() map[string]any {
	return map[string]any{"from_location": r.FromLocation, "date": r.Date}
}

// IntakeAvailableDaysResponse is the carrier's answer to an available-days
// query.
type IntakeAvailableDaysResponse struct {
	Date     []string `json:"date,omitempty"`
	AllDays  *bool    `json:"all_days,omitempty"`
	Errors   []any    `json:"errors,omitempty"`
	Warnings []any    `json:"warnings,omitempty"`
}

var intakeAvailableDaysResponseRules = validation.RuleSet{
	{Attribute: "date", Kind: validation.Array},
	{Attribute: "all_days", Kind: validation.Bool},
	{Attribute: "errors", Kind: validation.Array},
	{Attribute: "warnings", Kind: validation.Array},
}

// NewIntakeAvailableDaysResponse validates a decoded available-days response.
func NewIntakeAvailableDaysResponse(r IntakeAvailableDaysResponse) (*IntakeAvailableDaysResponse, error) {
	if err := validation.Validate(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *IntakeAvailableDaysResponse) ValidationRules() validation.RuleSet {
	return intakeAvailableDaysResponseRules
}

func (r *IntakeAvailableDaysResponse) Attributes() map[string]any {
	attrs := map[string]any{
		"date":     r.Date,
		"errors":   r.Errors,
		"warnings": r.Warnings,
	}
	if r.AllDays != nil {
		attrs["all_days"] = *r.AllDays
	}
	return attrs
}
