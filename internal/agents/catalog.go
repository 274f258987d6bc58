// Package agents holds the static catalog of voice receptionist agents.
package agents

// Descriptor is an immutable catalog entry. AgentID is the provider's agent
// identifier; ID is the display position in the catalog.
type Descriptor struct {
	ID          string   `json:"id"`
	AgentID     string   `json:"agentId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

var catalog = []Descriptor{
	{
		ID:          "1",
		AgentID:     "agent_68d22a69f45a3ee37168684831",
		Name:        "AutoCare Receptionist",
		Description: "Takes service & maintenance bookings",
		Features:    []string{"Schedule repairs", "Service history", "Emergency handling"},
	},
	{
		ID:          "2",
		AgentID:     "agent_71d88e63296903b65f6dc0d372",
		Name:        "Real Estate Receptionist",
		Description: "Handles buyer & seller inquiries",
		Features:    []string{"Property tours", "Price inquiries", "Agent scheduling"},
	},
	{
		ID:          "3",
		AgentID:     "agent_8ce17d51123f73b631cb29c6e0",
		Name:        "Medical Receptionist",
		Description: "Books appointments, routes patients",
		Features:    []string{"Appointments", "Insurance", "Prescriptions"},
	},
	{
		ID:          "4",
		AgentID:     "agent_2c8c98f3046de28c6c9d7fa086",
		Name:        "Law Firm Receptionist",
		Description: "Screens legal clients & schedules consults",
		Features:    []string{"Case screening", "Consultations", "Documents"},
	},
	{
		ID:          "5",
		AgentID:     "agent_26634c1417075ff72793ffe658",
		Name:        "Spa/Salon Receptionist",
		Description: "Manages spa & salon bookings",
		Features:    []string{"Service booking", "Stylist selection", "Packages"},
	},
	{
		ID:          "6",
		AgentID:     "agent_6ecbb6ef0fa72411251e18a0a1",
		Name:        "Fitness/Gym Receptionist",
		Description: "Handles gym tours & memberships",
		Features:    []string{"Memberships", "Class booking", "Trainers"},
	},
	{
		ID:          "7",
		AgentID:     "agent_b14e82649c409bc1cb88deb100",
		Name:        "Corah AI",
		Description: "Custom configured agent",
		Features:    []string{"Custom features", "Configurable", "Flexible"},
	},
}

// List returns a copy of the catalog in display order.
func List() []Descriptor {
	out := make([]Descriptor, len(catalog))
	for i, d := range catalog {
		out[i] = d.clone()
	}
	return out
}

// Find looks up a descriptor by provider agent id.
func Find(agentID string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.AgentID == agentID {
			return d.clone(), true
		}
	}
	return Descriptor{}, false
}

func (d Descriptor) clone() Descriptor {
	d.Features = append([]string(nil), d.Features...)
	return d
}
