package entities

import "github.com/shippinglabs/cdek/pkg/validation"

// Webhook is the payload for registering an event subscription endpoint.
type Webhook struct {
	URL        string   `json:"url"`
	Type       string   `json:"type"`
	EventTypes []string `json:"event_types"`
}

var webhookRules = validation.RuleSet{
	{Attribute: "url", Kind: validation.String, Required: true},
	{Attribute: "type", Kind: validation.String, Required: true},
	{Attribute: "event_types", Kind: validation.Array, Required: true, Items: &validation.Rule{
		Kind:     validation.String,
		Required: true,
	}},
}

// NewWebhook builds a validated webhook registration.
func NewWebhook(url, hookType string, eventTypes []string) (*Webhook, error) {
	w := &Webhook{URL: url, Type: hookType, EventTypes: eventTypes}
	if err := validation.Validate(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Webhook) ValidationRules() validation.RuleSet { return webhookRules }

func (w *Webhook) Attributes() map[string]any {
	return map[string]any{"url": w.URL, "type": w.Type, "event_types": w.EventTypes}
}
