package negotiation

import "spacerental/model"

// ListView is the role-shaped negotiation list. Each role renders the
// same rows against a different counterpart: the business owner sees
// the space owner it is negotiating with and vice versa.
type ListView struct {
	View         string     `json:"view"`
	Negotiations []ListItem `json:"negotiations"`
}

type ListItem struct {
	Row
	CounterpartID   int64  `json:"counterpart_id"`
	CounterpartName string `json:"counterpart_name"`
}

type roleView struct {
	name        string
	counterpart func(Row) (int64, string)
}

// roleViews is the closed dispatch table over roles. Adding a role
// means adding an entry here, not another if/else chain.
var roleViews = map[model.Role]roleView{
	model.RoleBusinessOwner: {
		name:        "business_owner.negotiations",
		counterpart: func(r Row) (int64, string) { return r.ReceiverID, r.ReceiverName },
	},
	model.RoleSpaceOwner: {
		name:        "space_owner.negotiations",
		counterpart: func(r Row) (int64, string) { return r.SenderID, r.SenderName },
	},
	model.RoleAdmin: {
		name:        "admin.negotiations",
		counterpart: func(r Row) (int64, string) { return r.SenderID, r.SenderName },
	},
}

func buildListView(role model.Role, rows []Row) *ListView {
	v, ok := roleViews[role]
	if !ok {
		v = roleViews[model.RoleBusinessOwner]
	}
	out := &ListView{View: v.name, Negotiations: make([]ListItem, 0, len(rows))}
	for _, r := range rows {
		id, name := v.counterpart(r)
		out.Negotiations = append(out.Negotiations, ListItem{Row: r, CounterpartID: id, CounterpartName: name})
	}
	return out
}
