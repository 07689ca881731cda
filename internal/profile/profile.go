// Package profile holds the Profile Document that drives the portfolio page
// and the loader that fetches it.
package profile

// Social is a link to one of the owner's social profiles.
type Social struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// PersonalInfo describes the portfolio owner.
type PersonalInfo struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Bio      string   `json:"bio"`
	Photo    string   `json:"photo,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	Socials  []Social `json:"socials,omitempty"`
}

// Project is a single portfolio project card.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// Experience is one entry of work history.
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// SkillGroup is a labeled list of skills.
type SkillGroup struct {
	Name string   `json:"name"`
	List []string `json:"list"`
}

// Document is the whole payload of data.json. It is never mutated after
// loading.
type Document struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Projects     []Project    `json:"projects"`
	Experience   []Experience `json:"experience"`
	Skills       []SkillGroup `json:"skills"`
}

// ContactInfo is the subset of the document shown in the contact modal.
type ContactInfo struct {
	Email    string
	Phone    string
	Location string
	Socials  []Social
}

// ContactInfo returns a copy of the contact fields so callers can keep it for
// the rest of the session without holding the document.
func (d *Document) ContactInfo() *ContactInfo {
	info := &ContactInfo{
		Email:    d.PersonalInfo.Email,
		Phone:    d.PersonalInfo.Phone,
		Location: d.PersonalInfo.Location,
	}
	if len(d.PersonalInfo.Socials) > 0 {
		info.Socials = append([]Social(nil), d.PersonalInfo.Socials...)
	}
	return info
}
