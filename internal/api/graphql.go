package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/samandr77/guardbook/internal/entity"
)

type resolverFunc func(p graphql.ResolveParams) (any, error)

// resolve converts service errors into GraphQL errors carrying a code.
func resolve(op string, fn resolverFunc) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		v, err := fn(p)
		if err != nil {
			return nil, gqlErr(p.Context, op, err)
		}

		return v, nil
	}
}

// NewSchema builds the GraphQL schema over s.
func NewSchema(s Service) (graphql.Schema, error) {
	authorField := &graphql.Field{
		Type: authorType,
		Resolve: resolve("author", func(p graphql.ResolveParams) (any, error) {
			src, _ := p.Source.(map[string]any)

			author, ok := src["author"].(entity.Author)
			if !ok {
				return nil, nil
			}

			a, err := s.ResolveAuthor(p.Context, author)
			if err != nil {
				return nil, err
			}

			return map[string]any{"kind": string(a.Kind), "name": a.Name, "picture": a.Picture}, nil
		}),
	}

	replyType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Reply",
		Fields: graphql.Fields{
			"author":    authorField,
			"body":      &graphql.Field{Type: graphql.String},
			"timestamp": &graphql.Field{Type: graphql.String},
		},
	})

	messageType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Message",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"author":    authorField,
			"title":     &graphql.Field{Type: graphql.String},
			"body":      &graphql.Field{Type: graphql.String},
			"type":      &graphql.Field{Type: messageKindEnum},
			"approved":  &graphql.Field{Type: graphql.Boolean},
			"createdAt": &graphql.Field{Type: graphql.String},
			"replies":   &graphql.Field{Type: graphql.NewList(replyType)},
		},
	})

	r := &resolvers{s: s}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getGuardAttendance": &graphql.Field{
				Type:    graphql.NewList(attendanceType),
				Args:    graphql.FieldConfigArgument{"guard_id": nonNullInt()},
				Resolve: resolve("getGuardAttendance", r.guardAttendance),
			},
			"getGuardPaymentInfo": &graphql.Field{
				Type:    salaryType,
				Args:    graphql.FieldConfigArgument{"guard_id": nonNullInt()},
				Resolve: resolve("getGuardPaymentInfo", r.guardPaymentInfo),
			},
			"getInbox": &graphql.Field{
				Type:    graphql.NewList(messageType),
				Args:    graphql.FieldConfigArgument{"guard_id": nonNullInt()},
				Resolve: resolve("getInbox", r.inbox),
			},
			"getAllInbox": &graphql.Field{
				Type:    graphql.NewList(messageType),
				Args:    graphql.FieldConfigArgument{"type": {Type: messageKindEnum}},
				Resolve: resolve("getAllInbox", r.allInbox),
			},
			"getMessage": &graphql.Field{
				Type:    messageType,
				Args:    graphql.FieldConfigArgument{"id": nonNullID()},
				Resolve: resolve("getMessage", r.message),
			},
			"getGuardInfo": &graphql.Field{
				Type:    guardType,
				Args:    graphql.FieldConfigArgument{"guard_id": nonNullInt()},
				Resolve: resolve("getGuardInfo", r.guardInfo),
			},
			"getGuardContactInfo": &graphql.Field{
				Type:    guardContactType,
				Args:    graphql.FieldConfigArgument{"guard_id": nonNullInt()},
				Resolve: resolve("getGuardContactInfo", r.guardContactInfo),
			},
			"getAllGuards": &graphql.Field{
				Type: graphql.NewList(guardType),
				Args: graphql.FieldConfigArgument{
					"location_id": {Type: graphql.ID},
					"limit":       {Type: graphql.Int},
					"offset":      {Type: graphql.Int},
				},
				Resolve: resolve("getAllGuards", r.allGuards),
			},
			"findGuardsInLocation": &graphql.Field{
				Type:    graphql.NewList(guardType),
				Args:    graphql.FieldConfigArgument{"location_id": nonNullID()},
				Resolve: resolve("findGuardsInLocation", r.guardsInLocation),
			},
			"guardExists": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    graphql.FieldConfigArgument{"email": nonNullString()},
				Resolve: resolve("guardExists", r.guardExists),
			},
			"confirmPassword": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"guard_id": nonNullInt(),
					"password": nonNullString(),
				},
				Resolve: resolve("confirmPassword", r.confirmPassword),
			},
			"locations": &graphql.Field{
				Type:    graphql.NewList(locationType),
				Resolve: resolve("locations", r.locations),
			},
			"location": &graphql.Field{
				Type:    locationType,
				Args:    graphql.FieldConfigArgument{"id": nonNullID()},
				Resolve: resolve("location", r.location),
			},
			"locationExists": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    graphql.FieldConfigArgument{"name": nonNullString()},
				Resolve: resolve("locationExists", r.locationExists),
			},
			"getAllGuardsAttendance": &graphql.Field{
				Type: graphql.NewList(attendanceType),
				Args: graphql.FieldConfigArgument{
					"guard_id": {Type: graphql.Int},
					"from":     {Type: graphql.String},
					"to":       {Type: graphql.String},
				},
				Resolve: resolve("getAllGuardsAttendance", r.allAttendance),
			},
			"getAllSalaries": &graphql.Field{
				Type:    graphql.NewList(salaryType),
				Resolve: resolve("getAllSalaries", r.allSalaries),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type:    tokenType,
				Args:    graphql.FieldConfigArgument{"email": nonNullString(), "password": nonNullString()},
				Resolve: resolve("login", r.login),
			},
			"guardLogin": &graphql.Field{
				Type:    tokenType,
				Args:    graphql.FieldConfigArgument{"email": nonNullString(), "password": nonNullString()},
				Resolve: resolve("guardLogin", r.guardLogin),
			},
			"signup": &graphql.Field{
				Type: adminType,
				Args: graphql.FieldConfigArgument{
					"username": nonNullString(),
					"email":    nonNullString(),
					"password": nonNullString(),
				},
				Resolve: resolve("signup", r.signup),
			},
			"signIn": &graphql.Field{
				Type: attendanceType,
				Args: graphql.FieldConfigArgument{
					"guard_id": nonNullInt(),
					"date":     nonNullString(),
					"signin":   nonNullString(),
				},
				Resolve: resolve("signIn", r.signIn),
			},
			"signOut": &graphql.Field{
				Type: attendanceType,
				Args: graphql.FieldConfigArgument{
					"guard_id": nonNullInt(),
					"date":     nonNullString(),
					"signout":  nonNullString(),
				},
				Resolve: resolve("signOut", r.signOut),
			},
			"newMessage": &graphql.Field{
				Type: messageType,
				Args: graphql.FieldConfigArgument{
					"title": {Type: graphql.String},
					"body":  nonNullString(),
					"type":  {Type: graphql.NewNonNull(messageKindEnum)},
				},
				Resolve: resolve("newMessage", r.newMessage),
			},
			"newMessageReply": &graphql.Field{
				Type:    messageType,
				Args:    graphql.FieldConfigArgument{"id": nonNullID(), "body": nonNullString()},
				Resolve: resolve("newMessageReply", r.newMessageReply),
			},
			"approveLeave": &graphql.Field{
				Type:    messageType,
				Args:    graphql.FieldConfigArgument{"id": nonNullID()},
				Resolve: resolve("approveLeave", r.approveLeave),
			},
			"registerGuard": &graphql.Field{
				Type: guardType,
				Args: graphql.FieldConfigArgument{
					"guard_id":       nonNullInt(),
					"email":          nonNullString(),
					"password":       nonNullString(),
					"surname":        {Type: graphql.String},
					"first_name":     nonNullString(),
					"last_name":      nonNullString(),
					"date_of_birth":  {Type: graphql.String},
					"gender":         {Type: graphql.String},
					"national_id":    {Type: graphql.String},
					"postal_address": {Type: graphql.String},
					"cellphone":      {Type: graphql.String},
					"location_id":    {Type: graphql.ID},
					"employed_at":    {Type: graphql.String},
					"contract":       {Type: graphql.NewNonNull(contractEnum)},
					"gross_salary":   nonNullString(),
					"deductions":     {Type: graphql.NewList(graphql.NewNonNull(deductionInput))},
				},
				Resolve: resolve("registerGuard", r.registerGuard),
			},
			"updateGuardBasicInfo": &graphql.Field{
				Type: guardType,
				Args: graphql.FieldConfigArgument{
					"guard_id":      nonNullInt(),
					"surname":       {Type: graphql.String},
					"first_name":    nonNullString(),
					"last_name":     nonNullString(),
					"date_of_birth": {Type: graphql.String},
					"gender":        {Type: graphql.String},
					"national_id":   {Type: graphql.String},
					"location_id":   {Type: graphql.ID},
					"employed_at":   {Type: graphql.String},
				},
				Resolve: resolve("updateGuardBasicInfo", r.updateGuardBasicInfo),
			},
			"updateGuardContactInfo": &graphql.Field{
				Type: guardType,
				Args: graphql.FieldConfigArgument{
					"guard_id":       nonNullInt(),
					"email":          nonNullString(),
					"postal_address": {Type: graphql.String},
					"cellphone":      {Type: graphql.String},
				},
				Resolve: resolve("updateGuardContactInfo", r.updateGuardContactInfo),
			},
			"changePassword": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"guard_id":         nonNullInt(),
					"current_password": nonNullString(),
					"new_password":     nonNullString(),
				},
				Resolve: resolve("changePassword", r.changePassword),
			},
			"addLocation": &graphql.Field{
				Type:    locationType,
				Args:    graphql.FieldConfigArgument{"name": nonNullString()},
				Resolve: resolve("addLocation", r.addLocation),
			},
			"updateLocation": &graphql.Field{
				Type:    locationType,
				Args:    graphql.FieldConfigArgument{"id": nonNullID(), "name": nonNullString()},
				Resolve: resolve("updateLocation", r.updateLocation),
			},
			"deleteLocation": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    graphql.FieldConfigArgument{"id": nonNullID()},
				Resolve: resolve("deleteLocation", r.deleteLocation),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func nonNullInt() *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)}
}

func nonNullString() *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}
}

func nonNullID() *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
}

func argString(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

func argInt64(p graphql.ResolveParams, name string) int64 {
	v, _ := p.Args[name].(int)
	return int64(v)
}

// argNationalID reads a national ID sent as a string, since GraphQL Int is 32-bit.
func argNationalID(p graphql.ResolveParams) (int64, error) {
	s := strings.TrimSpace(argString(p, "national_id"))
	if s == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, entity.InvalidField("nationalId")
	}

	return n, nil
}

func argUUID(p graphql.ResolveParams, name string) (uuid.UUID, error) {
	s := strings.TrimSpace(argString(p, name))
	if s == "" {
		return uuid.Nil, entity.MissingField(name)
	}

	id, err := uuid.FromString(s)
	if err != nil {
		return uuid.Nil, entity.InvalidField(name)
	}

	return id, nil
}

func argNullUUID(p graphql.ResolveParams, name string) (uuid.NullUUID, error) {
	if strings.TrimSpace(argString(p, name)) == "" {
		return uuid.NullUUID{}, nil
	}

	id, err := argUUID(p, name)
	if err != nil {
		return uuid.NullUUID{}, err
	}

	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// argDate reads an optional YYYY-MM-DD argument.
func argDate(p graphql.ResolveParams, name string) (time.Time, error) {
	s := strings.TrimSpace(argString(p, name))
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, entity.InvalidField(name)
	}

	return t, nil
}

func argDecimal(v any, name string) (decimal.Decimal, error) {
	s, _ := v.(string)

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, entity.InvalidField(name)
	}

	return d, nil
}

func argDeductions(p graphql.ResolveParams) ([]entity.Deduction, error) {
	raw, _ := p.Args["deductions"].([]any)

	out := make([]entity.Deduction, 0, len(raw))

	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, entity.InvalidField("deductions")
		}

		amount, err := argDecimal(m["amount"], "deductions.amount")
		if err != nil {
			return nil, err
		}

		name, _ := m["name"].(string)

		out = append(out, entity.Deduction{Name: strings.TrimSpace(name), Amount: amount})
	}

	return out, nil
}

func isInvalidCredentials(err error) bool {
	return errors.Is(err, entity.ErrInvalidCredentials)
}
