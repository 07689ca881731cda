package view

import (
	"strconv"
	"time"

	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/resume"
)

const (
	fadeIn       = "fadeInUp 0.6s ease-out forwards"
	LoadFailText = "Failed to load portfolio data."
)

// seconds formats a millisecond delay as a CSS time value.
func seconds(ms int) string {
	return strconv.FormatFloat(float64(ms)/1000, 'f', -1, 64) + "s"
}

// staggered starts the node hidden and fades it in after delayMS.
func staggered(n *Node, delayMS int) *Node {
	return n.Style("animation", fadeIn).
		Style("animation-delay", seconds(delayMS)).
		Style("opacity", "0")
}

// externalLink opens href in a new browsing context with no opener or
// referrer.
func externalLink(href string) *Node {
	return El("a").
		Attr("href", href).
		Attr("target", "_blank").
		Attr("rel", "noopener noreferrer")
}

func socialLinks(socials []profile.Social, classes ...string) *Node {
	if len(socials) == 0 {
		return nil
	}
	row := El("div").Class("social-links").Class(classes...)
	for _, s := range socials {
		row.Append(externalLink(s.URL).
			Attr("title", s.Name).
			Append(El("i").Class(s.Icon)))
	}
	return row
}

func sectionTitle(title string) *Node {
	return El("h2").Class("section-title").SetText(title)
}

// About renders the owner's header block.
func About(info profile.PersonalInfo) []*Node {
	var nodes []*Node
	if info.Photo != "" {
		nodes = append(nodes, El("img").
			Attr("src", info.Photo).
			Attr("alt", info.Name+" photo").
			Class("about-photo"))
	}
	nodes = append(nodes,
		El("h1").SetText(info.Name),
		El("p").
			Style("font-weight", "500").
			Style("color", "var(--color-accent)").
			Style("font-size", "1.125rem").
			SetText(info.Title),
		El("p").Style("margin-top", "var(--space-md)").SetText(info.Bio),
	)
	if row := socialLinks(info.Socials); row != nil {
		nodes = append(nodes, row)
	}
	return nodes
}

// Projects renders one card per project in source order.
func Projects(projects []profile.Project) []*Node {
	nodes := make([]*Node, 0, len(projects))
	for i, p := range projects {
		card := staggered(El("div").Class("project-card"), i*100)
		card.Append(
			El("h3").SetText(p.Title),
			El("p").SetText(p.Description),
		)
		if len(p.Technologies) > 0 {
			techs := El("div").Class("skills-list")
			for _, tech := range p.Technologies {
				techs.Append(El("span").Class("skill").SetText(tech))
			}
			card.Append(techs)
		}
		if p.Link != "" {
			card.Append(externalLink(p.Link).
				Class("github-link").
				Attr("title", "View on GitHub").
				Append(El("i").Class("fab", "fa-github"), Text(" GitHub")))
		}
		nodes = append(nodes, card)
	}
	return nodes
}

// Experience renders the work history under its section title.
func Experience(entries []profile.Experience) []*Node {
	nodes := []*Node{sectionTitle("Experience")}
	for i, e := range entries {
		nodes = append(nodes, staggered(El("div").Class("experience-item"), i*100).Append(
			El("h3").SetText(e.Role),
			El("p").SetText(e.Company+" | "+e.Period),
			El("p").SetText(e.Description),
		))
	}
	return nodes
}

// Skills renders each group as a heading followed by its tags.
func Skills(groups []profile.SkillGroup) []*Node {
	nodes := []*Node{sectionTitle("Skills")}
	for g, group := range groups {
		margin := "0"
		if g > 0 {
			margin = "var(--space-lg)"
		}
		nodes = append(nodes, El("h3").Style("margin-top", margin).SetText(group.Name))

		list := El("div").Class("skills-list").Style("margin-top", "var(--space-sm)")
		for s, skill := range group.List {
			list.Append(staggered(El("span").Class("skill"), g*100+s*50).SetText(skill))
		}
		nodes = append(nodes, list)
	}
	return nodes
}

// Resume renders the embedded viewer and the download link.
func Resume(asset resume.Asset, now time.Time) []*Node {
	viewer := El("iframe").
		Attr("src", asset.ViewerURL(now)).
		Attr("width", "100%").
		Attr("height", "600px").
		Attr("title", "Resume PDF").
		Style("border", "none").
		Style("border-radius", "8px").
		Style("background-color", "var(--color-surface)")

	download := El("a").
		Attr("href", asset.Href()).
		Attr("download", asset.DownloadName).
		Class("github-link").
		Style("margin-top", "var(--space-md)").
		Style("display", "inline-flex").
		Append(El("i").Class("fas", "fa-download"), Text(" Download PDF"))

	return []*Node{sectionTitle("Resume"), viewer, download}
}

// ContactDetails renders the contact modal body: email, phone, location and
// socials, each only when present.
func ContactDetails(info *profile.ContactInfo) []*Node {
	if info == nil {
		return nil
	}
	var nodes []*Node
	if info.Email != "" {
		nodes = append(nodes, El("div").Class("contact-email").Append(
			El("i").Class("fas", "fa-envelope"),
			Text(" "),
			El("a").Attr("href", "mailto:"+info.Email).SetText(info.Email),
		))
	}
	if info.Phone != "" {
		nodes = append(nodes, El("div").Class("contact-phone").Append(
			El("i").Class("fas", "fa-phone"),
			Text(" "),
			El("a").Attr("href", "tel:"+info.Phone).SetText(info.Phone),
		))
	}
	if info.Location != "" {
		nodes = append(nodes, El("div").Class("contact-location").Append(
			El("i").Class("fas", "fa-map-marker-alt"),
			Text(" "+info.Location),
		))
	}
	if row := socialLinks(info.Socials, "contact-socials"); row != nil {
		nodes = append(nodes, El("div").Class("contact-socials-block").Append(
			El("div").
				Style("margin", "18px 0 6px 0").
				Style("font-weight", "600").
				SetText("Socials:"),
			row,
		))
	}
	return nodes
}

// LoadFailure is the only content left on the page when the document cannot
// be loaded.
func LoadFailure() []*Node {
	return []*Node{El("p").
		Class("load-error").
		Style("color", "var(--color-accent)").
		Style("text-align", "center").
		Style("padding", "var(--space-lg)").
		SetText(LoadFailText)}
}
