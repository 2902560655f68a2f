package catalog

import "github.com/pentagongym/gymdiag/pkg/diagram"

// msg builds a message between two lifelines identified by name.
func msg(from, to string, y float64, text string, kind diagram.MessageKind) diagram.Message {
	return diagram.Message{From: from, To: to, Y: y, Text: text, Kind: kind}
}

// note places a folded-corner annotation. Left notes are 15 units wide and
// start at x; right notes are 20 units wide and end at x.
func note(title string, x, y float64, right bool, lines ...string) diagram.Box {
	w := 15.0
	if right {
		w = 20
		x -= w
	}
	return diagram.Box{
		Label:      title,
		Kind:       diagram.BoxNote,
		X:          x,
		Y:          y,
		W:          w,
		H:          8,
		Category:   "note",
		Attributes: lines,
	}
}

const (
	call  = diagram.MsgSync
	reply = diagram.MsgReturn
	loop  = diagram.MsgSelf
)

func registrationSequence() *diagram.Diagram {
	const (
		user  = "User"
		front = "Frontend"
		auth  = "AuthController"
		orm   = "Prisma ORM"
		db    = "PostgreSQL"
	)
	return &diagram.Diagram{
		Name:        RegistrationSequence,
		Kind:        diagram.KindSequence,
		Title:       "User Registration Sequence Diagram",
		Width:       100,
		Height:      70,
		FigureWidth: 20,
		Sequence: &diagram.Sequence{
			HeadY:  60,
			Bottom: 5,
			Participants: []diagram.Participant{
				{Name: user, X: 10, Category: "actor"},
				{Name: front, X: 25, Category: "system"},
				{Name: auth, X: 45, Category: "backend"},
				{Name: orm, X: 65, Category: "database"},
				{Name: db, X: 85, Category: "database"},
			},
			Messages: []diagram.Message{
				msg(user, front, 50, "1: Fill registration form", call),
				msg(front, auth, 47, "2: POST /api/auth/register", call),
				msg(auth, auth, 44, "3: Validate input data", loop),
				msg(auth, orm, 41, "4: Hash password", call),
				msg(auth, orm, 38, "5: user.create(userData)", call),
				msg(orm, db, 35, "6: INSERT INTO users", call),
				msg(db, orm, 32, "7: Return user record", reply),
				msg(orm, auth, 29, "8: Return created user", reply),
				msg(auth, front, 26, "9: Return success response", reply),
				msg(front, user, 23, "10: Display success message", call),
			},
		},
		Boxes: []diagram.Box{
			note("User provides:", 15, 12, false,
				"• Email", "• Password", "• Personal Details"),
			note("Database ensures:", 80, 12, true,
				"• Email uniqueness", "• Data integrity", "• ACID compliance"),
		},
	}
}

func bookingSequence() *diagram.Diagram {
	const (
		member  = "Member"
		front   = "Frontend"
		booking = "BookingController"
		session = "SessionController"
		orm     = "Prisma ORM"
		db      = "Database"
	)
	return &diagram.Diagram{
		Name:        BookingSequence,
		Kind:        diagram.KindSequence,
		Title:       "Class Booking Process Sequence Diagram",
		Width:       115,
		Height:      80,
		FigureWidth: 22,
		Sequence: &diagram.Sequence{
			HeadY:  72,
			Bottom: 2,
			Participants: []diagram.Participant{
				{Name: member, X: 10, Category: "actor"},
				{Name: front, X: 25, Category: "system"},
				{Name: booking, X: 45, Category: "backend"},
				{Name: session, X: 65, Category: "backend"},
				{Name: orm, X: 85, Category: "database"},
				{Name: db, X: 105, Category: "database"},
			},
			Messages: []diagram.Message{
				msg(member, front, 66, "1: Browse available classes", call),
				msg(front, booking, 63, "2: GET /api/classes", call),
				msg(booking, session, 60, "3: getAvailableSessions()", call),
				msg(session, orm, 57, "4: findMany(sessions)", call),
				msg(orm, db, 54, "5: SELECT sessions with capacity", call),
				msg(db, orm, 51, "6: Return session data", reply),
				msg(orm, session, 48, "7: Return sessions", reply),
				msg(session, booking, 45, "8: Return available classes", reply),
				msg(booking, front, 42, "9: Return class list", reply),
				msg(front, member, 39, "10: Display classes", call),

				msg(member, front, 34, "11: Select class and book", call),
				msg(front, booking, 31, "12: POST /api/bookings", call),
				msg(booking, session, 28, "13: checkCapacity(sessionId)", call),
				msg(session, orm, 25, "14: Check current bookings", call),
				msg(orm, session, 22, "15: Return capacity status", reply),
				msg(booking, orm, 19, "16: createBooking(userId, sessionId)", call),
				msg(orm, db, 16, "17: INSERT booking, UPDATE session", call),
				msg(db, orm, 13, "18: Return booking confirmation", reply),
				msg(orm, booking, 10, "19: Return booking details", reply),
				msg(booking, front, 7, "20: Return success response", reply),
			},
		},
		Boxes: []diagram.Box{
			note("Member must have:", 0.5, 3, false,
				"• Valid subscription", "• Available class credits"),
			note("System ensures:", 114.5, 26, true,
				"• Capacity limits", "• No double booking", "• Transaction integrity"),
		},
	}
}

func subscriptionSequence() *diagram.Diagram {
	const (
		member  = "Member"
		front   = "Frontend"
		sub     = "SubscriptionController"
		payment = "PaymentController"
		sim     = "SimulatedPayment"
		db      = "Database"
	)
	return &diagram.Diagram{
		Name:        SubscriptionSequence,
		Kind:        diagram.KindSequence,
		Title:       "Subscription Purchase Process Sequence Diagram",
		Width:       125,
		Height:      90,
		FigureWidth: 24,
		Sequence: &diagram.Sequence{
			HeadY:  80,
			Bottom: 2,
			Participants: []diagram.Participant{
				{Name: member, X: 10, Category: "actor"},
				{Name: front, X: 25, Category: "system"},
				{Name: sub, X: 45, Category: "backend"},
				{Name: payment, X: 70, Category: "backend"},
				{Name: sim, X: 95, Category: "external"},
				{Name: db, X: 115, Category: "database"},
			},
			Messages: []diagram.Message{
				msg(member, front, 70, "1: Browse packages", call),
				msg(front, sub, 67, "2: GET /api/packages", call),
				msg(sub, db, 64, "3: SELECT packages WHERE active=true", call),
				msg(db, sub, 61, "4: Return package list", reply),
				msg(sub, front, 58, "5: Return packages", reply),
				msg(front, member, 55, "6: Display package options", call),

				msg(member, front, 50, "7: Select package and subscribe", call),
				msg(front, sub, 47, "8: POST /api/subscriptions", call),
				msg(sub, db, 44, "9: Check existing subscription", call),
				msg(db, sub, 41, "10: Return subscription status", reply),
				msg(sub, db, 38, "11: CREATE subscription (pending)", call),
				msg(db, sub, 35, "12: Return subscription ID", reply),

				msg(sub, payment, 32, "13: Process payment", call),
				msg(payment, sim, 29, "14: Simulate card payment", call),
				msg(sim, sim, 26, "15: Validate card details", loop),
				msg(sim, db, 23, "16: LOG transaction", call),
				msg(sim, payment, 20, "17: Return payment result", reply),

				msg(payment, sub, 17, "18: Update subscription status", call),
				msg(sub, db, 14, "19: UPDATE subscription SET active", call),
				msg(db, sub, 11, "20: Confirm update", reply),
				msg(sub, front, 8, "21: Return success response", reply),
				msg(front, member, 5, "22: Display confirmation", call),
			},
			Activations: []diagram.Activation{
				{Participant: sub, Top: 47, Height: 8},
				{Participant: payment, Top: 32, Height: 8},
				{Participant: sim, Top: 29, Height: 6},
			},
		},
		Boxes: []diagram.Box{
			note("Package Options:", 0.5, 22, false,
				"• Basic: £30/month", "• Standard: £50/month", "• Premium: £80/month",
				"+ Protein Supplement: £50"),
			note("Payment Features:", 124.5, 2, true,
				"• Simulated processing", "• Card validation", "• Transaction logging",
				"• Failure simulation"),
		},
	}
}
