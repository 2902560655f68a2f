package catalog

import "github.com/pentagongym/gymdiag/pkg/diagram"

func component(label, category string, x, y, w, h float64, lines ...string) diagram.Box {
	return diagram.Box{
		Label:      label,
		Kind:       diagram.BoxComponent,
		X:          x,
		Y:          y,
		W:          w,
		H:          h,
		Category:   category,
		Attributes: lines,
	}
}

func flow(from, to string) diagram.Relationship {
	return diagram.Relationship{From: from, To: to, Kind: diagram.RelAssociation}
}

func systemArchitecture() *diagram.Diagram {
	return &diagram.Diagram{
		Name:        SystemArchitecture,
		Kind:        diagram.KindArchitecture,
		Title:       "Pentagon Gymnastics System Architecture",
		Width:       120,
		Height:      90,
		FigureWidth: 24,
		Boxes: []diagram.Box{
			component("React Frontend", "frontend", 10, 70, 30, 8,
				"React 18 with TypeScript", "Vite Build System", "Tailwind CSS",
				"Context API State Management"),
			component("UI Components", "frontend", 45, 70, 25, 8,
				"LoginForm, RegisterForm", "ClassCard, Booking Components",
				"Payment Forms", "Admin Dashboard"),
			component("Routing & Navigation", "frontend", 75, 70, 25, 8,
				"React Router DOM", "Protected Routes", "Role-based Access",
				"Dynamic Navigation"),

			component("Express.js Server", "middleware", 25, 55, 35, 6,
				"RESTful API Endpoints", "JWT Authentication", "CORS Configuration",
				"Request Validation"),
			component("Authentication Middleware", "security", 65, 55, 30, 6,
				"JWT Token Verification", "Role-based Authorization", "Rate Limiting",
				"Security Headers"),

			component("Auth Controller", "backend", 10, 40, 20, 8,
				"User Registration", "Login/Logout", "Profile Management",
				"Token Validation"),
			component("Subscription Controller", "backend", 35, 40, 20, 8,
				"Package Management", "Subscription CRUD", "Package Switching",
				"Renewal Logic"),
			component("Booking Controller", "backend", 60, 40, 20, 8,
				"Class Booking", "Session Management", "Capacity Checking",
				"Booking History"),
			component("Payment Controller", "backend", 85, 40, 20, 8,
				"Payment Processing", "Simulated Payments", "Transaction Logging",
				"Receipt Generation"),

			component("Prisma ORM", "database", 30, 25, 30, 6,
				"Type-safe Database Client", "Query Builder", "Migration Management",
				"Connection Pooling"),
			component("Transaction Service", "backend", 65, 25, 25, 6,
				"Business Logic", "Data Validation", "Activity Logging",
				"Error Handling"),

			component("PostgreSQL Database", "database", 40, 8, 40, 8,
				"16 Normalized Tables", "ACID Compliance", "Referential Integrity",
				"Performance Optimization"),

			component("Payment Gateway", "external", 8, 25, 18, 6,
				"Card Validation", "Payment Simulation", "Transaction Status",
				"Failure Simulation"),
		},
		Relationships: []diagram.Relationship{
			flow("React Frontend", "Express.js Server"),
			flow("UI Components", "Express.js Server"),
			flow("Routing & Navigation", "Authentication Middleware"),

			flow("Express.js Server", "Auth Controller"),
			flow("Express.js Server", "Subscription Controller"),
			flow("Authentication Middleware", "Booking Controller"),
			flow("Authentication Middleware", "Payment Controller"),

			flow("Auth Controller", "Prisma ORM"),
			flow("Subscription Controller", "Prisma ORM"),
			flow("Booking Controller", "Transaction Service"),
			flow("Payment Controller", "Transaction Service"),

			flow("Prisma ORM", "PostgreSQL Database"),
			flow("Transaction Service", "PostgreSQL Database"),

			flow("Payment Gateway", "Prisma ORM"),
		},
		Legend: &diagram.Legend{
			X: 105, Y: 10, W: 14, H: 25,
			Title: "Component Types",
			Items: []diagram.LegendItem{
				{Label: "Frontend", Category: "frontend"},
				{Label: "Backend", Category: "backend"},
				{Label: "Database", Category: "database"},
				{Label: "External", Category: "external"},
				{Label: "Middleware", Category: "middleware"},
				{Label: "Security", Category: "security"},
			},
		},
	}
}

// layer is a wide band holding one chip per component.
func layer(label, category string, y, h float64, components ...string) diagram.Box {
	return diagram.Box{
		Label:      label,
		Kind:       diagram.BoxLayer,
		X:          1,
		Y:          y,
		W:          16,
		H:          h,
		Category:   category,
		Attributes: components,
	}
}

func external(label string, y float64, lines ...string) diagram.Box {
	return diagram.Box{
		Label:      label,
		Kind:       diagram.BoxExternal,
		X:          18.2,
		Y:          y,
		W:          3.4,
		H:          1.2,
		Category:   "external_system",
		Attributes: lines,
	}
}

func layeredArchitecture() *diagram.Diagram {
	both := func(from, to string) diagram.Relationship {
		return diagram.Relationship{From: from, To: to, Kind: diagram.RelBidirectional}
	}
	return &diagram.Diagram{
		Name:        LayeredArchitecture,
		Kind:        diagram.KindLayered,
		Title:       "Pentagon Gymnastics - System Architecture (UML)",
		Width:       22,
		Height:      15,
		FigureWidth: 22,
		Timestamp:   true,
		Boxes: []diagram.Box{
			layer("Presentation Layer", "presentation", 11.6, 2,
				"React Frontend", "Responsive UI", "State Management", "Routing"),
			layer("API Gateway Layer", "gateway", 9.2, 1.6,
				"Express.js Server", "CORS Middleware", "Authentication", "Route Handlers"),
			layer("Business Logic Layer", "business", 6.0, 2.4,
				"User Controller", "Class Controller", "Subscription Controller",
				"Payment Controller", "Admin Controller", "Gear Controller"),
			layer("Data Access Layer", "data_access", 3.4, 1.8,
				"Prisma ORM", "Database Migrations", "Query Optimization", "Connection Pooling"),
			layer("Database Layer", "storage", 1.5, 1.4,
				"PostgreSQL Database", "Indexes", "Constraints", "Triggers"),

			external("External Payment Gateway", 9.4, "(Simulated)"),
			external("Email Service", 6.6, "(Future)"),
			external("Cloud Storage", 3.7, "(Render)"),

			{
				Label:    "Deployment: Render Cloud Platform | Database: PostgreSQL | CDN: Render Static",
				Kind:     diagram.BoxBanner,
				X:        0.5,
				Y:        0.35,
				W:        17,
				H:        0.8,
				Category: "deployment",
			},
		},
		Relationships: []diagram.Relationship{
			both("Presentation Layer", "API Gateway Layer"),
			both("API Gateway Layer", "Business Logic Layer"),
			both("Business Logic Layer", "Data Access Layer"),
			both("Data Access Layer", "Database Layer"),
		},
	}
}
