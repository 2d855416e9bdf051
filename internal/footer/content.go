package footer

import "slices"

const (
	BrandName        = "Blend & Beam"
	BrandMark        = "B&B"
	Tagline          = "Furniture, lighting and decor for homes with character."
	ShortDescription = "Handpicked pieces from independent makers across Ghana."
)

type LinkEntry struct {
	Label       string
	Destination string
}

type LinkGroup struct {
	Title   string
	Entries []LinkEntry
}

type ContactInfo struct {
	Phone    string
	Email    string
	Location string
}

type SocialLink struct {
	Platform        string
	Href            string
	AccessibleLabel string
}

var linkGroups = []LinkGroup{
	{
		Title: "Explore",
		Entries: []LinkEntry{
			{Label: "Home", Destination: "/"},
			{Label: "New Arrivals", Destination: "/new-arrivals"},
			{Label: "Shops", Destination: "/shops"},
			{Label: "About Us", Destination: "/about"},
		},
	},
	{
		Title: "Support",
		Entries: []LinkEntry{
			{Label: "Contact", Destination: "/contact"},
			{Label: "FAQ", Destination: "/faq"},
			{Label: "Returns", Destination: "/returns"},
			{Label: "Privacy Policy", Destination: "/privacy"},
		},
	},
}

var contact = ContactInfo{
	Phone:    "+233 55 467 1026",
	Email:    "info@blendandbeam.com",
	Location: "Accra, Ghana",
}

// Social hrefs are placeholders until the accounts are live.
var socials = []SocialLink{
	{Platform: "facebook", Href: "#", AccessibleLabel: "Blend & Beam on Facebook"},
	{Platform: "instagram", Href: "#", AccessibleLabel: "Blend & Beam on Instagram"},
}

func LinkGroups() []LinkGroup {
	return cloneGroups(linkGroups)
}

func Contact() ContactInfo {
	return contact
}

func Socials() []SocialLink {
	return slices.Clone(socials)
}

func cloneGroups(groups []LinkGroup) []LinkGroup {
	out := make([]LinkGroup, len(groups))
	for i, group := range groups {
		out[i] = LinkGroup{Title: group.Title, Entries: slices.Clone(group.Entries)}
	}
	return out
}
