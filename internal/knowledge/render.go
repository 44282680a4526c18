package knowledge

import (
	"fmt"
	"strings"
)

const (
	slugMax        = 90
	tagsMax        = 90
	labelMax       = 90
	titleMax       = 120
	warrantyMax    = 120
	includesMax    = 140
	serviceDescMax = 180
	productDescMax = 220
	summaryMax     = 240
	noteContentMax = 280
)

// Render builds the section text. Empty families are left out.
func Render(products []Product, services []Service, pages []Page, notes []Note) string {
	var sections []string

	if len(products) > 0 {
		lines := []string{"[PRODUCTS]"}
		for _, p := range products {
			lines = append(lines, fmt.Sprintf("- %s | category=%s | price=%s | locale=%s | slug=%s",
				field(p.Title, titleMax),
				field(p.Category, labelMax),
				FormatPriceForChat(p.Price),
				field(p.Locale, labelMax),
				field(p.Slug, slugMax),
			))
			lines = appendDetail(lines, "description", p.Description, productDescMax)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(services) > 0 {
		lines := []string{"[SERVICES]"}
		for _, s := range services {
			lines = append(lines, fmt.Sprintf("- %s | type=%s | material=%s | price=%s | locale=%s | slug=%s",
				field(s.Name, titleMax),
				field(s.Type, labelMax),
				field(s.Material, labelMax),
				FormatPriceForChat(s.Price),
				field(s.Locale, labelMax),
				field(s.Slug, slugMax),
			))
			lines = appendDetail(lines, "description", s.Description, serviceDescMax)
			lines = appendDetail(lines, "includes", s.Includes, includesMax)
			lines = appendDetail(lines, "warranty", s.Warranty, warrantyMax)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(pages) > 0 {
		lines := []string{"[POLICIES/PAGES]"}
		for _, p := range pages {
			lines = append(lines, fmt.Sprintf("- %s | module=%s | locale=%s | slug=%s",
				field(p.Title, titleMax),
				field(p.ModuleKey, labelMax),
				field(p.Locale, labelMax),
				field(p.Slug, slugMax),
			))
			lines = appendDetail(lines, "summary", PageSummary(p.Summary, p.Content), summaryMax)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(notes) > 0 {
		lines := []string{"[ADMIN_KNOWLEDGE]"}
		for _, n := range notes {
			lines = append(lines, fmt.Sprintf("- %s | locale=%s",
				field(n.Title, titleMax),
				field(n.Locale, labelMax),
			))
			lines = appendDetail(lines, "notes", n.Content, noteContentMax)
			lines = appendDetail(lines, "tags", n.Tags, tagsMax)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n")
}

func field(v string, limit int) string {
	if t := Truncate(v, limit); t != "" {
		return t
	}
	return "-"
}

func appendDetail(lines []string, label, v string, limit int) []string {
	if t := Truncate(v, limit); t != "" {
		return append(lines, "  "+label+": "+t)
	}
	return lines
}
