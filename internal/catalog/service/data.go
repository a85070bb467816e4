package service

import "github.com/seeforge-labs/seeforge-gateway/internal/catalog/domain"

// Built-in catalog data. Prices are whole INR. The template list is a demo
// seed and gets replaced by the upstream catalog on refresh; the rest is
// static reference data the wizard and the pricing fallback rely on.

func defaultTiers() []domain.Tier {
	return []domain.Tier{
		{Name: "Idea Spark", Price: 1499},
		{Name: "Starter", Price: 3000},
		{Name: "MVP Launch", Price: 6000},
		{Name: "Growth", Price: 12000},
		{Name: "AI Pro", Price: 20000},
	}
}

func defaultFeatures() []domain.Feature {
	return []domain.Feature{
		{ID: "Auth", Name: "Authentication (Email/Google/GitHub)", Price: 0, Included: true},
		{ID: "Payments", Name: "Payment Integration (Stripe/Razorpay)", Price: 500},
		{ID: "Admin Panel", Name: "Admin Panel (CRUD)", Price: 1500},
		{ID: "Multi-language", Name: "Multi-language (i18n)", Price: 800},
		{ID: "Chat Support", Name: "Chat/Support Widget", Price: 1200},
		{ID: "SEO Setup", Name: "SEO & Meta Setup", Price: 0, Included: true},
	}
}

func defaultAddons() []domain.Addon {
	return []domain.Addon{
		{ID: "Custom Domain Setup", Name: "Custom Domain Setup", Price: 499},
		{ID: "Logo + Branding Pack", Name: "Logo + Branding Pack", Price: 799},
		{ID: "SEO Optimization", Name: "SEO Optimization", Price: 999},
		{ID: "AI Assistant Integration", Name: "AI Assistant Integration", Price: 1499},
		{ID: "Hosting Extension", Name: "Hosting Extension", Price: 199, Recurring: true},
		{ID: "Maintenance Support", Name: "Maintenance Support", Price: 999, Recurring: true},
		{ID: "Analytics Dashboard", Name: "Analytics Dashboard", Price: 499},
		{ID: "Data Migration", Name: "Data Migration", Price: 2000},
	}
}

func defaultFrontendStacks() []domain.Stack {
	return []domain.Stack{
		{ID: "react-vite", Name: "React + Vite", Description: "Fast, modern", Recommended: true, TimeImpact: "+0 days", BestFor: "Most MVPs"},
		{ID: "nextjs", Name: "Next.js", Description: "SSR/SSG for SEO", TimeImpact: "+2 days", BestFor: "Content-heavy sites"},
		{ID: "react-tailwind", Name: "React + Tailwind + shadcn", Description: "Beautiful UI components", TimeImpact: "+1 day", BestFor: "Design-led products"},
		{ID: "vanilla", Name: "HTML/CSS/JS", Description: "Simple & lightweight", TimeImpact: "-2 days", BestFor: "Landing pages"},
	}
}

func defaultBackendStacks() []domain.Stack {
	return []domain.Stack{
		{ID: "supabase", Name: "Supabase (Auth + DB)", Description: "Recommended for rapid builds", Recommended: true, TimeImpact: "+0 days", BestFor: "Rapid prototyping"},
		{ID: "firebase", Name: "Firebase", Description: "Serverless, easy setup", TimeImpact: "+1 day", BestFor: "Realtime apps"},
		{ID: "nodejs-express", Name: "Node.js + Express", Description: "Full control, flexible", TimeImpact: "+3 days", BestFor: "Custom APIs"},
		{ID: "fastapi", Name: "FastAPI + MongoDB", Description: "Python backend", TimeImpact: "+3 days", BestFor: "Data-heavy apps"},
	}
}

func defaultUITemplateIDs() []string {
	return []string{"minimal", "ecommerce", "marketplace", "portfolio", "lms", domain.CustomUITemplateID}
}

func defaultTemplates() []domain.Template {
	return []domain.Template{
		{
			ID:                 "1",
			Name:               "E-commerce Starter",
			Description:        "Complete e-commerce platform with product catalog, cart, and checkout",
			Category:           "ecommerce",
			Features:           []string{"Product Management", "Shopping Cart", "Payment Integration", "Admin Dashboard"},
			TechStack:          domain.TechStack{Frontend: "react-tailwind", Backend: "nodejs-express"},
			EstimatedBuildTime: "2-3 weeks",
			BasePrice:          6000,
		},
		{
			ID:                 "2",
			Name:               "SaaS Dashboard",
			Description:        "Modern SaaS dashboard with user management and analytics",
			Category:           "saas",
			Features:           []string{"User Auth", "Analytics Dashboard", "Subscription Management", "API Integration"},
			TechStack:          domain.TechStack{Frontend: "nextjs", Backend: "supabase"},
			EstimatedBuildTime: "2 weeks",
			BasePrice:          8000,
		},
		{
			ID:                 "3",
			Name:               "Marketplace Platform",
			Description:        "Multi-vendor marketplace with seller and buyer interfaces",
			Category:           "marketplace",
			Features:           []string{"Vendor Dashboard", "Product Listings", "Order Management", "Reviews & Ratings"},
			TechStack:          domain.TechStack{Frontend: "react-vite", Backend: "fastapi"},
			EstimatedBuildTime: "3-4 weeks",
			BasePrice:          10000,
		},
	}
}
