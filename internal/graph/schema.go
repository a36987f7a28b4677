package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/mkelley412/youth-group-backend/internal/checkin"
	"github.com/mkelley412/youth-group-backend/internal/event"
	"github.com/mkelley412/youth-group-backend/internal/notes"
	"github.com/mkelley412/youth-group-backend/internal/person"
	"github.com/mkelley412/youth-group-backend/internal/registration"
	"github.com/mkelley412/youth-group-backend/internal/smallgroup"
	"github.com/mkelley412/youth-group-backend/internal/summary"
)

// Resolver bundles the services the GraphQL roots call into. The
// GraphQL surface deliberately overlaps but does not mirror REST:
// some operations exist only on one side.
type Resolver struct {
	People        *person.Service
	Events        *event.Service
	SmallGroups   *smallgroup.Service
	Registrations *registration.Service
	Notes         *notes.Service
	Checkins      *checkin.Service
	Summaries     *summary.Service
}

func argID(p graphql.ResolveParams, name string) uint {
	return uint(p.Args[name].(int))
}

func optionalID(p graphql.ResolveParams, name string) *uint {
	v, ok := p.Args[name]
	if !ok || v == nil {
		return nil
	}
	id := uint(v.(int))
	return &id
}

func optionalString(p graphql.ResolveParams, name string) *string {
	v, ok := p.Args[name]
	if !ok || v == nil {
		return nil
	}
	s := v.(string)
	return &s
}

// NewSchema builds the executable schema around a resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"people": &graphql.Field{
				Type: graphql.NewList(personType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.People.ListPeople(p.Context)
				},
			},
			"person": &graphql.Field{
				Type: personType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.People.GetPerson(p.Context, argID(p, "id"))
				},
			},
			"events": &graphql.Field{
				Type: graphql.NewList(eventType),
				Args: graphql.FieldConfigArgument{
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"search": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Events.ListEvents(p.Context,
						p.Args["limit"].(int), p.Args["offset"].(int), p.Args["search"].(string))
				},
			},
			"event": &graphql.Field{
				Type: eventType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Events.GetEventByID(p.Context, argID(p, "id"))
				},
			},
			"smallGroups": &graphql.Field{
				Type: graphql.NewList(smallGroupType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.SmallGroups.ListGroups(p.Context)
				},
			},
			"smallGroup": &graphql.Field{
				Type: smallGroupType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.SmallGroups.GetGroup(p.Context, argID(p, "id"))
				},
			},
			"smallGroupMembers": &graphql.Field{
				Type: graphql.NewList(groupPersonType),
				Args: graphql.FieldConfigArgument{
					"smallGroupId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.SmallGroups.ListMembers(p.Context, argID(p, "smallGroupId"))
				},
			},
			"smallGroupLeaders": &graphql.Field{
				Type: graphql.NewList(groupPersonType),
				Args: graphql.FieldConfigArgument{
					"smallGroupId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.SmallGroups.ListLeaders(p.Context, argID(p, "smallGroupId"))
				},
			},
			"eventRegistrations": &graphql.Field{
				Type: graphql.NewList(registrationWithNameType),
				Args: graphql.FieldConfigArgument{
					"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Registrations.ListByEvent(p.Context, argID(p, "eventId"))
				},
			},
			"personNotes": &graphql.Field{
				Type: graphql.NewList(personNoteType),
				Args: graphql.FieldConfigArgument{
					"personId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Notes.ListPersonNotes(p.Context, argID(p, "personId"))
				},
			},
			"parentContacts": &graphql.Field{
				Type: graphql.NewList(parentContactType),
				Args: graphql.FieldConfigArgument{
					"personId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Notes.ListParentContacts(p.Context, argID(p, "personId"))
				},
			},
			"eventNotes": &graphql.Field{
				Type: graphql.NewList(eventNoteType),
				Args: graphql.FieldConfigArgument{
					"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Notes.ListEventNotes(p.Context, argID(p, "eventId"))
				},
			},
			"liveCheckIns": &graphql.Field{
				Type: liveCheckInsType,
				Args: graphql.FieldConfigArgument{
					"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Checkins.GetLiveCheckIns(p.Context, argID(p, "eventId"))
				},
			},
			"comprehensiveEventSummary": &graphql.Field{
				Type: comprehensiveEventSummaryType,
				Args: graphql.FieldConfigArgument{
					"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Summaries.GetComprehensiveEventSummary(p.Context, argID(p, "eventId"))
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createPerson": &graphql.Field{
				Type: personType,
				Args: graphql.FieldConfigArgument{
					"firstName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"lastName":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"age":       &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := &person.CreatePersonRequest{
						FirstName: p.Args["firstName"].(string),
						LastName:  p.Args["lastName"].(string),
					}
					if age, ok := p.Args["age"]; ok && age != nil {
						a := age.(int)
						req.Age = &a
					}
					return r.People.CreatePerson(p.Context, req, "graphql")
				},
			},
			"updatePerson": &graphql.Field{
				Type: personType,
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"firstName": &graphql.ArgumentConfig{Type: graphql.String},
					"lastName":  &graphql.ArgumentConfig{Type: graphql.String},
					"age":       &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := &person.UpdatePersonRequest{
						FirstName: optionalString(p, "firstName"),
						LastName:  optionalString(p, "lastName"),
					}
					if age, ok := p.Args["age"]; ok && age != nil {
						a := age.(int)
						req.Age = &a
					}
					return r.People.UpdatePerson(p.Context, argID(p, "id"), req, "graphql")
				},
			},
			"deletePerson": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := r.People.DeletePerson(p.Context, argID(p, "id"), "graphql"); err != nil {
						return false, err
					}
					return true, nil
				},
			},
			"createEvent": &graphql.Field{
				Type: eventType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"type":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"dateTime": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"location": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"notes":    &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := &event.CreateEventRequest{
						Name:     p.Args["name"].(string),
						Type:     p.Args["type"].(string),
						DateTime: p.Args["dateTime"].(string),
						Location: p.Args["location"].(string),
						Notes:    optionalString(p, "notes"),
					}
					return r.Events.CreateEvent(p.Context, req, "graphql")
				},
			},
			"createSmallGroup": &graphql.Field{
				Type: smallGroupType,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.SmallGroups.CreateGroup(p.Context,
						&smallgroup.CreateSmallGroupRequest{Name: p.Args["name"].(string)}, "graphql")
				},
			},
			"registerForEvent": &graphql.Field{
				Type: registrationType,
				Args: graphql.FieldConfigArgument{
					"eventId":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"attendeeId":       &graphql.ArgumentConfig{Type: graphql.Int},
					"leaderId":         &graphql.ArgumentConfig{Type: graphql.Int},
					"volunteerId":      &graphql.ArgumentConfig{Type: graphql.Int},
					"emergencyContact": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := &registration.CreateRegistrationRequest{
						EventID:          argID(p, "eventId"),
						AttendeeID:       optionalID(p, "attendeeId"),
						LeaderID:         optionalID(p, "leaderId"),
						VolunteerID:      optionalID(p, "volunteerId"),
						EmergencyContact: p.Args["emergencyContact"].(string),
					}
					return r.Registrations.Register(p.Context, req, "graphql")
				},
			},
			"addMemberToGroup": &graphql.Field{
				Type: smallGroupMemberType,
				Args: graphql.FieldConfigArgument{
					"smallGroupId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"personId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.SmallGroups.AddMember(p.Context,
						argID(p, "smallGroupId"), argID(p, "personId"), "graphql")
				},
			},
			"addLeaderToGroup": &graphql.Field{
				Type: smallGroupLeaderType,
				Args: graphql.FieldConfigArgument{
					"smallGroupId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"personId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.SmallGroups.AddLeader(p.Context,
						argID(p, "smallGroupId"), argID(p, "personId"), "graphql")
				},
			},
			"addPersonNote": &graphql.Field{
				Type: personNoteType,
				Args: graphql.FieldConfigArgument{
					"personId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"text":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"category":  &graphql.ArgumentConfig{Type: graphql.String},
					"createdBy": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := &notes.CreatePersonNoteRequest{
						Text:      p.Args["text"].(string),
						Category:  optionalString(p, "category"),
						CreatedBy: p.Args["createdBy"].(string),
					}
					return r.Notes.AddPersonNote(p.Context, argID(p, "personId"), req, "graphql")
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
