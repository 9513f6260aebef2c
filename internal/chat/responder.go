package chat

import "strings"

// Reply is a canned answer produced by the responder.
type Reply struct {
	Topic   string
	Message string
}

type rule struct {
	topic    string
	keywords []string
	message  string
}

// Rules are matched in order; the first rule whose keyword appears in the
// lowercased message wins.
var rules = []rule{
	{
		topic:    "greeting",
		keywords: []string{"hello", "hi ", "hey", "good morning", "good evening"},
		message:  "Hello! Welcome to LuxeRide. How can I help you today?",
	},
	{
		topic:    "pricing",
		keywords: []string{"price", "cost", "rate", "how much", "expensive"},
		message:  "Our daily rates start at $180 for luxury sedans and go up to $1,200 for exotic sports cars. You can see exact pricing on each vehicle's page.",
	},
	{
		topic:    "fleet",
		keywords: []string{"cars", "fleet", "vehicle", "model", "brand"},
		message:  "Our fleet includes Ferrari, Lamborghini, Rolls-Royce, Bentley, Aston Martin, Porsche and Tesla. Browse the full catalog under Cars.",
	},
	{
		topic:    "booking",
		keywords: []string{"book", "reserve", "rent", "reservation", "availability"},
		message:  "To book a car, open its page, pick your dates and press Reserve. You will need an account and a valid driving licence.",
	},
	{
		topic:    "payment",
		keywords: []string{"pay", "payment", "card", "deposit"},
		message:  "We accept all major credit cards. A refundable security deposit is held at pickup and released within 7 days of return.",
	},
	{
		topic:    "hours",
		keywords: []string{"hour", "open", "close", "when"},
		message:  "Our showroom is open Monday to Saturday, 9:00 to 19:00, and Sundays 10:00 to 16:00.",
	},
	{
		topic:    "contact",
		keywords: []string{"contact", "phone", "email", "reach", "support"},
		message:  "You can reach us at support@luxeride.example or +1 (555) 010-7788, or use the contact form on the Contact page.",
	},
	{
		topic:    "location",
		keywords: []string{"where", "location", "address", "pickup"},
		message:  "Pickup and return are at our downtown showroom, 300 Marina Boulevard. Delivery to your address can be arranged at booking time.",
	},
}

const fallbackMessage = "I'm not sure about that one. Try asking about our fleet, pricing, bookings or opening hours - or reach a human via the Contact page."

// Respond matches the message against the rule table and returns the first
// matching canned reply, or the fallback when nothing matches.
func Respond(message string) Reply {
	normalized := strings.ToLower(strings.TrimSpace(message))
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(normalized, kw) {
				return Reply{Topic: r.topic, Message: r.message}
			}
		}
	}
	return Reply{Topic: "fallback", Message: fallbackMessage}
}
