package web

import "cleanpro-web/internal/domain"

var testimonials = []domain.Testimonial{
	{ID: 1, Name: "Sarah M.", Role: "Homeowner", Rating: 5,
		Content: "Avatar CleanPro transformed my home! The deep cleaning service was thorough, and the team was professional and friendly. Highly recommend their services."},
	{ID: 2, Name: "James K.", Role: "Property Manager", Rating: 5,
		Content: "We use Avatar CleanPro for our AirBnB properties. Their turnaround is quick, and our guests always comment on how clean the places are. Excellent service!"},
	{ID: 3, Name: "Grace W.", Role: "Working Mom", Rating: 5,
		Content: "The nanny service has been a lifesaver for our family. Our nanny is trustworthy, experienced, and our kids adore her. Thank you, Avatar CleanPro!"},
	{ID: 4, Name: "Michael O.", Role: "Office Manager", Rating: 5,
		Content: "Our office has never looked better. The team is punctual, thorough, and uses eco-friendly products which aligns with our company values."},
	{ID: 5, Name: "Linda A.", Role: "Homeowner", Rating: 5,
		Content: "The carpet cleaning service exceeded my expectations. Stains I thought were permanent are completely gone. Will definitely use them again!"},
}

type benefit struct {
	Icon        domain.IconName
	Title       string
	Description string
}

var benefits = []benefit{
	{"Award", "Experienced Staff", "Our team is professionally trained with years of experience in the cleaning industry."},
	{"Leaf", "Eco-Friendly Products", "We use environmentally safe cleaning products that are gentle yet effective."},
	{"Shield", "Satisfaction Guaranteed", "Not satisfied? We'll re-clean for free. Your happiness is our priority."},
	{"Clock", "Flexible Scheduling", "Book services at times that work for you. We adapt to your busy schedule."},
	{"Wallet", "Competitive Pricing", "Quality service at fair prices. No hidden fees, transparent pricing always."},
	{"ThumbsUp", "Trusted by 500+", "Join hundreds of satisfied customers who trust us with their homes and offices."},
}

type indicator struct {
	Icon        domain.IconName
	Value       string
	Label       string
	Description string
}

var indicators = []indicator{
	{"Users", "500+", "Happy Customers", "Satisfied clients"},
	{"Star", "5.0", "Star Rating", "Customer reviews"},
	{"Shield", "100%", "Satisfaction", "Guaranteed quality"},
	{"Leaf", "Eco", "Friendly", "Safe products"},
}

// footerServiceLinks point at the category anchors on the services page.
var footerServiceLinks = []domain.NavLink{
	{Href: "/services#mama-fua", Label: "Mama Fua"},
	{Href: "/services#deep-cleaning", Label: "Deep Cleaning"},
	{Href: "/services#laundromat", Label: "Laundromat"},
	{Href: "/services#office-cleaning", Label: "Office Cleaning"},
	{Href: "/services#nanny", Label: "Nanny Services"},
}

// featuredCategories is how many categories the home page previews.
const featuredCategories = 6

// legalLastUpdated is shown on the privacy and terms pages.
const legalLastUpdated = "January 22, 2026"
