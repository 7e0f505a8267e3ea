// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"fmt"

	"github.com/MKhiriev/go-landing-builder/models"
)

// body writes the type-specific markup inside the <section> element.
func (b *builder) body() {
	b.open("div", "lp-container")
	defer b.close("div")

	switch c := b.section.Content.(type) {
	case *models.HeroContent:
		b.hero(c)
	case *models.FeaturesContent:
		b.features(c)
	case *models.TestimonialsContent:
		b.testimonials(c)
	case *models.PricingContent:
		b.pricing(c)
	case *models.CTAContent:
		b.cta(c)
	case *models.FAQContent:
		b.faq(c)
	case *models.ContactContent:
		b.contact(c)
	default:
		b.text("h2", "lp-title", "title", "", "title")
	}
}

func (b *builder) hero(c *models.HeroContent) {
	b.text("h1", "lp-title", "title", c.Title, "title")
	b.text("p", "lp-subtitle", "subtitle", c.Subtitle, "subtitle")
	b.link("lp-button", "buttonText", c.ButtonText, "buttonText", orDefault(c.ButtonLink, b.placeholder("buttonLink")))
	b.image("lp-hero-image", "imageUrl", c.ImageURL, orDefault(c.Title, b.placeholder("title")))
}

func (b *builder) features(c *models.FeaturesContent) {
	b.text("h2", "lp-title", "title", c.Title, "title")
	b.text("p", "lp-subtitle", "subtitle", c.Subtitle, "subtitle")

	items := c.Items
	if len(items) == 0 {
		items = []models.FeatureItem{{}}
	}
	b.open("div", "lp-grid")
	for i, item := range items {
		b.open("div", "lp-card")
		b.text("div", "lp-icon", itemPath("items", i, "icon"), item.Icon, "items.icon")
		b.text("h3", "lp-card-title", itemPath("items", i, "title"), item.Title, "items.title")
		b.markdown("lp-md", itemPath("items", i, "description"), item.Description, "items.description")
		b.close("div")
	}
	b.close("div")
}

func (b *builder) testimonials(c *models.TestimonialsContent) {
	b.text("h2", "lp-title", "title", c.Title, "title")

	items := c.Items
	if len(items) == 0 {
		items = []models.Testimonial{{}}
	}
	b.open("div", "lp-grid")
	for i, item := range items {
		b.open("figure", "lp-card lp-testimonial")
		b.text("blockquote", "lp-quote", itemPath("items", i, "quote"), item.Quote, "items.quote")
		b.open("figcaption", "lp-author")
		b.image("lp-avatar", itemPath("items", i, "avatarUrl"), item.AvatarURL, item.Author)
		b.text("strong", "lp-author-name", itemPath("items", i, "author"), item.Author, "items.author")
		b.text("span", "lp-author-role", itemPath("items", i, "role"), item.Role, "items.role")
		b.close("figcaption")
		b.close("figure")
	}
	b.close("div")
}

func (b *builder) pricing(c *models.PricingContent) {
	b.text("h2", "lp-title", "title", c.Title, "title")
	b.text("p", "lp-subtitle", "subtitle", c.Subtitle, "subtitle")

	plans := c.Plans
	if len(plans) == 0 {
		plans = []models.Plan{{}}
	}
	b.open("div", "lp-grid")
	for i, plan := range plans {
		class := "lp-card lp-plan"
		if plan.Highlighted {
			class += " lp-plan-highlighted"
		}
		b.open("div", class)
		b.text("h3", "lp-plan-name", itemPath("plans", i, "name"), plan.Name, "plans.name")
		b.open("p", "lp-plan-price")
		b.text("span", "lp-price", itemPath("plans", i, "price"), plan.Price, "plans.price")
		b.text("span", "lp-period", itemPath("plans", i, "period"), plan.Period, "plans.period")
		b.close("p")

		features := plan.Features
		if len(features) == 0 {
			features = []string{""}
		}
		b.open("ul", "lp-plan-features")
		for j, f := range features {
			b.text("li", "lp-plan-feature", fmt.Sprintf("plans[%d].features[%d]", i, j), f, "plans.features")
		}
		b.close("ul")

		b.link("lp-button", itemPath("plans", i, "buttonText"), plan.ButtonText, "plans.buttonText", "#contact")
		b.close("div")
	}
	b.close("div")
}

func (b *builder) cta(c *models.CTAContent) {
	b.text("h2", "lp-title", "title", c.Title, "title")
	b.text("p", "lp-subtitle", "subtitle", c.Subtitle, "subtitle")
	b.link("lp-button", "buttonText", c.ButtonText, "buttonText", orDefault(c.ButtonLink, b.placeholder("buttonLink")))
}

func (b *builder) faq(c *models.FAQContent) {
	b.text("h2", "lp-title", "title", c.Title, "title")

	items := c.Items
	if len(items) == 0 {
		items = []models.FAQItem{{}}
	}
	b.open("div", "lp-faq")
	for i, item := range items {
		b.open("details", "lp-faq-item")
		b.text("summary", "lp-question", itemPath("items", i, "question"), item.Question, "items.question")
		b.markdown("lp-md lp-answer", itemPath("items", i, "answer"), item.Answer, "items.answer")
		b.close("details")
	}
	b.close("div")
}

func (b *builder) contact(c *models.ContactContent) {
	b.text("h2", "lp-title", "title", c.Title, "title")
	b.text("p", "lp-subtitle", "subtitle", c.Subtitle, "subtitle")

	email := orDefault(c.Email, b.placeholder("email"))
	b.open("ul", "lp-contact")
	b.raw(`<li class="lp-contact-email">`)
	b.link("lp-email", "email", c.Email, "email", "mailto:"+email)
	b.raw("</li>")
	b.text("li", "lp-contact-phone", "phone", c.Phone, "phone")
	b.text("li", "lp-contact-address", "address", c.Address, "address")
	b.close("ul")

	b.link("lp-button", "buttonText", c.ButtonText, "buttonText", "mailto:"+email)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
