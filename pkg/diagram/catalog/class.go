package catalog

import "github.com/pentagongym/gymdiag/pkg/diagram"

func class(label string, x, y, w, h float64, attrs, methods []string) diagram.Box {
	return diagram.Box{
		Label:      label,
		Kind:       diagram.BoxClass,
		X:          x,
		Y:          y,
		W:          w,
		H:          h,
		Category:   "class",
		Attributes: attrs,
		Methods:    methods,
	}
}

func rel(kind diagram.RelKind, from, to, fromMult, toMult string) diagram.Relationship {
	return diagram.Relationship{From: from, To: to, Kind: kind, FromMult: fromMult, ToMult: toMult}
}

func classDiagram() *diagram.Diagram {
	user := class("User", 10, 85, 25, 20,
		[]string{
			"- id: UUID",
			"- email: String",
			"- firstName: String",
			"- lastName: String",
			"- phoneNumber: String",
			"- dateOfBirth: Date",
			"- createdAt: DateTime",
			"- updatedAt: DateTime",
		},
		[]string{
			"+ authenticate(): Boolean",
			"+ updateProfile(): void",
			"+ validateEmail(): Boolean",
			"+ getFullName(): String",
		})
	user.Category = "abstract"
	user.Stereotype = "abstract"
	user.Abstract = true

	return &diagram.Diagram{
		Name:        ClassDiagram,
		Kind:        diagram.KindClass,
		Title:       "Pentagon Gymnastics Management System\nUML Class Diagram",
		Width:       140,
		Height:      120,
		FigureWidth: 28,
		Boxes: []diagram.Box{
			user,
			class("Member", 5, 55, 25, 25,
				[]string{
					"- membershipType: String",
					"- emergencyContact: String",
					"- medicalInfo: String",
					"- parentGuardian: String",
					"- skillLevel: String",
					"- isActive: Boolean",
				},
				[]string{
					"+ bookClass(): Booking",
					"+ cancelBooking(): void",
					"+ subscribe(): Subscription",
					"+ getBookingHistory(): List<Booking>",
					"+ updateMembershipType(): void",
				}),
			class("Instructor", 40, 55, 25, 25,
				[]string{
					"- specializations: List<String>",
					"- certifications: List<String>",
					"- hireDate: Date",
					"- hourlyRate: Decimal",
					"- isAvailable: Boolean",
				},
				[]string{
					"+ createClass(): Class",
					"+ updateSchedule(): void",
					"+ markAttendance(): void",
					"+ getTeachingSchedule(): List<Schedule>",
					"+ addCertification(): void",
				}),
			class("Administrator", 75, 85, 25, 20,
				[]string{
					"- role: String",
					"- permissions: List<String>",
					"- department: String",
				},
				[]string{
					"+ manageUsers(): void",
					"+ generateReports(): Report",
					"+ configureSystem(): void",
					"+ auditLogs(): List<AuditLog>",
				}),
			class("Class", 110, 75, 25, 30,
				[]string{
					"- id: UUID",
					"- name: String",
					"- description: String",
					"- category: String",
					"- level: String",
					"- maxCapacity: Integer",
					"- duration: Integer",
					"- price: Decimal",
				},
				[]string{
					"+ addSchedule(): Schedule",
					"+ updateDetails(): void",
					"+ checkCapacity(): Boolean",
					"+ getEnrollmentCount(): Integer",
				}),
			class("Schedule", 110, 40, 25, 20,
				[]string{
					"- id: UUID",
					"- dayOfWeek: String",
					"- startTime: Time",
					"- endTime: Time",
					"- isRecurring: Boolean",
				},
				[]string{
					"+ createBooking(): Booking",
					"+ checkAvailability(): Boolean",
					"+ updateTiming(): void",
				}),
			class("Booking", 40, 25, 25, 25,
				[]string{
					"- id: UUID",
					"- bookingDate: DateTime",
					"- status: String",
					"- attended: Boolean",
					"- notes: String",
				},
				[]string{
					"+ confirm(): void",
					"+ cancel(): void",
					"+ markAttendance(): void",
					"+ generateReceipt(): Receipt",
				}),
			class("Subscription", 5, 25, 25, 25,
				[]string{
					"- id: UUID",
					"- startDate: Date",
					"- endDate: Date",
					"- status: String",
					"- autoRenew: Boolean",
				},
				[]string{
					"+ renew(): void",
					"+ cancel(): void",
					"+ upgrade(): void",
					"+ isActive(): Boolean",
				}),
			class("Package", 75, 55, 25, 20,
				[]string{
					"- id: UUID",
					"- name: String",
					"- description: String",
					"- price: Decimal",
					"- duration: Integer",
					"- classCredits: Integer",
				},
				[]string{
					"+ calculatePrice(): Decimal",
					"+ applyDiscount(): void",
					"+ isExpired(): Boolean",
				}),
			class("Payment", 75, 25, 25, 20,
				[]string{
					"- id: UUID",
					"- amount: Decimal",
					"- currency: String",
					"- method: String",
					"- status: String",
					"- transactionDate: DateTime",
				},
				[]string{
					"+ process(): Boolean",
					"+ refund(): void",
					"+ verify(): Boolean",
					"+ generateReceipt(): Receipt",
				}),
			class("Transaction", 40, 5, 25, 15,
				[]string{
					"- id: UUID",
					"- type: String",
					"- amount: Decimal",
					"- timestamp: DateTime",
				},
				[]string{
					"+ record(): void",
					"+ validate(): Boolean",
				}),
			class("Gear", 110, 5, 25, 20,
				[]string{
					"- id: UUID",
					"- name: String",
					"- category: String",
					"- size: String",
					"- price: Decimal",
					"- stockQuantity: Integer",
					"- isAvailable: Boolean",
				},
				[]string{
					"+ rent(): Boolean",
					"+ return(): void",
					"+ updateStock(): void",
					"+ checkAvailability(): Boolean",
				}),
		},
		Relationships: []diagram.Relationship{
			rel(diagram.RelInheritance, "Member", "User", "", ""),
			rel(diagram.RelInheritance, "Instructor", "User", "", ""),
			rel(diagram.RelInheritance, "Administrator", "User", "", ""),

			rel(diagram.RelComposition, "Member", "Subscription", "1", "0..*"),
			rel(diagram.RelComposition, "Class", "Schedule", "1", "1..*"),
			rel(diagram.RelComposition, "Package", "Subscription", "1", "0..*"),

			rel(diagram.RelAggregation, "Instructor", "Class", "1..*", "1..*"),
			rel(diagram.RelAggregation, "Member", "Booking", "1", "0..*"),

			rel(diagram.RelAssociation, "Schedule", "Booking", "1", "0..*"),
			rel(diagram.RelAssociation, "Booking", "Payment", "1", "0..1"),
			rel(diagram.RelAssociation, "Payment", "Transaction", "1", "1..*"),
			rel(diagram.RelAssociation, "Member", "Gear", "0..*", "0..*"),
		},
		Legend: &diagram.Legend{X: 68, Y: 3, W: 38, H: 14, Title: "UML Relationship Legend"},
	}
}
