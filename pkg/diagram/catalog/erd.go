package catalog

import "github.com/pentagongym/gymdiag/pkg/diagram"

// entity places an ERD entity centred on (cx, cy). Height follows the
// attribute count so the table stays readable when rows are added.
func entity(label string, cx, cy, w float64, attrs ...string) diagram.Box {
	h := float64(len(attrs)+2) * 0.3
	return diagram.Box{
		Label:      label,
		Kind:       diagram.BoxEntity,
		X:          cx - w/2,
		Y:          cy - h/2,
		W:          w,
		H:          h,
		Category:   "entity",
		Attributes: attrs,
	}
}

func relation(from, to, cardinality, label string) diagram.Relationship {
	return diagram.Relationship{
		From:        from,
		To:          to,
		Kind:        diagram.RelRelation,
		Cardinality: cardinality,
		Label:       label,
	}
}

func erd() *diagram.Diagram {
	return &diagram.Diagram{
		Name:        ERD,
		Kind:        diagram.KindERD,
		Title:       "Pentagon Gymnastics - Entity Relationship Diagram",
		Width:       20,
		Height:      16,
		FigureWidth: 20,
		Timestamp:   true,
		Boxes: []diagram.Box{
			entity("User", 2, 12, 2.8,
				"id (PK)", "email (UNIQUE)", "password", "role", "forename",
				"surname", "address", "dateOfBirth", "phoneNumber",
				"stripeCustomerId (NULL)", "createdAt", "updatedAt"),
			entity("Class", 10, 13, 2.2,
				"id (PK)", "name (UNIQUE)", "description"),
			entity("Session", 10, 10, 2.4,
				"id (PK)", "classId (FK)", "timeSlot", "capacity", "bookingCount"),
			entity("Booking", 6, 10, 2.2,
				"id (PK)", "userId (FK)", "sessionId (FK)"),
			entity("Package", 14, 10, 2.4,
				"id (PK)", "name (UNIQUE)", "description", "price",
				"maxClasses (NULL)", "priority", "isActive"),
			entity("Subscription", 6, 6, 3.2,
				"id (PK)", "userId (FK)", "packageId (FK)",
				"stripeSubscriptionId (NULL)", "status", "startDate", "endDate",
				"proteinSupplement", "isAutoRenew"),
			entity("GearItem", 18, 8, 2.2,
				"id (PK)", "name", "description", "price", "category", "stock", "isActive"),
			entity("GearOrder", 14, 6, 2.8,
				"id (PK)", "userId (FK)", "totalAmount", "status",
				"customerName", "shippingAddress"),
			entity("Transaction", 2, 6, 2.4,
				"id (PK)", "userId (FK)", "type", "amount", "currency", "status",
				"description", "relatedId (NULL)", "relatedType (NULL)"),
			entity("SimulatedCard", 10, 3, 2.8,
				"id (PK)", "cardNumber (UNIQUE)", "cardholderName", "expiryMonth",
				"expiryYear", "cvv", "cardType", "isValid", "balance"),
			entity("ActivityLog", 2, 2, 2.4,
				"id (PK)", "userId (FK)", "action", "description",
				"ipAddress (NULL)", "userAgent (NULL)"),
		},
		Relationships: []diagram.Relationship{
			relation("User", "Booking", "1:N", "has"),
			relation("Session", "Booking", "1:N", "contains"),
			relation("Class", "Session", "1:N", "has"),
			relation("User", "Subscription", "1:1", "has"),
			relation("Package", "Subscription", "1:N", "includes"),
			relation("User", "GearOrder", "1:N", "places"),
			relation("User", "Transaction", "1:N", "makes"),
			relation("User", "ActivityLog", "1:N", "generates"),
			relation("SimulatedCard", "Subscription", "1:N", "pays for"),
			relation("SimulatedCard", "GearOrder", "1:N", "pays for"),
		},
		Legend: &diagram.Legend{X: 15.6, Y: 1.2, W: 3.8, H: 1.8, Title: "Legend"},
	}
}
