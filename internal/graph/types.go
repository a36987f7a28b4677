package graph

import "github.com/graphql-go/graphql"

// Output types shared by the query and mutation roots. Field names
// follow the JSON casing of the REST responses so clients can reuse
// their models.

var personType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Person",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"age":       &graphql.Field{Type: graphql.Int},
	},
})

var eventType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Event",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"type":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"dateTime": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"location": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"notes":    &graphql.Field{Type: graphql.String},
		"isActive": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var smallGroupType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SmallGroup",
	Fields: graphql.Fields{
		"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var groupPersonType = graphql.NewObject(graphql.ObjectConfig{
	Name: "GroupPerson",
	Fields: graphql.Fields{
		"membershipId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"personId":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"firstName":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var smallGroupMemberType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SmallGroupMember",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"smallGroupId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"attendeeId":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var smallGroupLeaderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SmallGroupLeader",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"smallGroupId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"leaderId":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var registrationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Registration",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"eventId":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"attendeeId":       &graphql.Field{Type: graphql.Int},
		"leaderId":         &graphql.Field{Type: graphql.Int},
		"volunteerId":      &graphql.Field{Type: graphql.Int},
		"emergencyContact": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var registrationWithNameType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EventRegistration",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"eventId":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"personId":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"firstName":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"role":             &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"emergencyContact": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var personNoteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PersonNote",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"personId":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"text":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"category":  &graphql.Field{Type: graphql.String},
		"createdBy": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"created":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var parentContactType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ParentContact",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"personId":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"summary":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"method":    &graphql.Field{Type: graphql.String},
		"date":      &graphql.Field{Type: graphql.DateTime},
		"createdBy": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"created":   &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var eventNoteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EventNote",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"eventId":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"notes":       &graphql.Field{Type: graphql.String},
		"concerns":    &graphql.Field{Type: graphql.String},
		"studentWins": &graphql.Field{Type: graphql.String},
		"createdBy":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"created":     &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var checkInEntryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CheckInEntry",
	Fields: graphql.Fields{
		"studentId":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"firstName":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"checkInTime": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
	},
})

var liveCheckInsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LiveCheckIns",
	Fields: graphql.Fields{
		"eventId":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"checkedInCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"students":       &graphql.Field{Type: graphql.NewList(checkInEntryType)},
		"source":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var summaryEventSectionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SummaryEventSection",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"type":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"dateTime": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"location": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"source":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var summaryRegistrationsSectionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SummaryRegistrationsSection",
	Fields: graphql.Fields{
		"total":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"attendees":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"leaders":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"volunteers": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"source":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var summaryCountSectionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SummaryCountSection",
	Fields: graphql.Fields{
		"count":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"source": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var summaryTotalsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SummaryTotals",
	Fields: graphql.Fields{
		"totalRegistered": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"totalCheckedIn":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"attendanceRate":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"notesCount":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var comprehensiveEventSummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ComprehensiveEventSummary",
	Fields: graphql.Fields{
		"event":         &graphql.Field{Type: graphql.NewNonNull(summaryEventSectionType)},
		"registrations": &graphql.Field{Type: graphql.NewNonNull(summaryRegistrationsSectionType)},
		"liveCheckIns":  &graphql.Field{Type: graphql.NewNonNull(summaryCountSectionType)},
		"notes":         &graphql.Field{Type: graphql.NewNonNull(summaryCountSectionType)},
		"summary":       &graphql.Field{Type: graphql.NewNonNull(summaryTotalsType)},
		"dataSources":   &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})
