package api

import (
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/graphql-go/graphql"

	"github.com/samandr77/guardbook/internal/entity"
)

var (
	contractEnum = graphql.NewEnum(graphql.EnumConfig{
		Name: "Contract",
		Values: graphql.EnumValueConfigMap{
			string(entity.ContractMonth): &graphql.EnumValueConfig{Value: string(entity.ContractMonth)},
			string(entity.ContractWeek):  &graphql.EnumValueConfig{Value: string(entity.ContractWeek)},
			string(entity.ContractDay):   &graphql.EnumValueConfig{Value: string(entity.ContractDay)},
		},
	})

	messageKindEnum = graphql.NewEnum(graphql.EnumConfig{
		Name: "MessageType",
		Values: graphql.EnumValueConfigMap{
			string(entity.MessageReport): &graphql.EnumValueConfig{Value: string(entity.MessageReport)},
			string(entity.MessageLeave):  &graphql.EnumValueConfig{Value: string(entity.MessageLeave)},
			string(entity.MessageCustom): &graphql.EnumValueConfig{Value: string(entity.MessageCustom)},
		},
	})

	tokenType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"ok":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"token": &graphql.Field{Type: graphql.String},
			"error": &graphql.Field{Type: graphql.String},
		},
	})

	adminType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Admin",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username":  &graphql.Field{Type: graphql.String},
			"email":     &graphql.Field{Type: graphql.String},
			"picture":   &graphql.Field{Type: graphql.String},
			"createdAt": &graphql.Field{Type: graphql.String},
		},
	})

	locationType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Location",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.String},
			"createdAt": &graphql.Field{Type: graphql.String},
		},
	})

	guardType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Guard",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"guardId":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"email":         &graphql.Field{Type: graphql.String},
			"surname":       &graphql.Field{Type: graphql.String},
			"firstName":     &graphql.Field{Type: graphql.String},
			"lastName":      &graphql.Field{Type: graphql.String},
			"dateOfBirth":   &graphql.Field{Type: graphql.String},
			"gender":        &graphql.Field{Type: graphql.String},
			"nationalId":    &graphql.Field{Type: graphql.String},
			"postalAddress": &graphql.Field{Type: graphql.String},
			"cellphone":     &graphql.Field{Type: graphql.String},
			"locationId":    &graphql.Field{Type: graphql.ID},
			"picture":       &graphql.Field{Type: graphql.String},
			"employedAt":    &graphql.Field{Type: graphql.String},
			"createdAt":     &graphql.Field{Type: graphql.String},
		},
	})

	guardContactType = graphql.NewObject(graphql.ObjectConfig{
		Name: "GuardContact",
		Fields: graphql.Fields{
			"guardId":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"email":         &graphql.Field{Type: graphql.String},
			"postalAddress": &graphql.Field{Type: graphql.String},
			"cellphone":     &graphql.Field{Type: graphql.String},
		},
	})

	deductionType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Deduction",
		Fields: graphql.Fields{
			"name":   &graphql.Field{Type: graphql.String},
			"amount": &graphql.Field{Type: graphql.String},
		},
	})

	deductionInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "DeductionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"amount": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	transactionType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Transaction",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.ID},
			"date":   &graphql.Field{Type: graphql.String},
			"amount": &graphql.Field{Type: graphql.String},
			"text":   &graphql.Field{Type: graphql.String},
		},
	})

	salaryType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Salary",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.ID},
			"guardId":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"grossSalary":     &graphql.Field{Type: graphql.String},
			"totalDeductions": &graphql.Field{Type: graphql.String},
			"netSalary":       &graphql.Field{Type: graphql.String},
			"contract":        &graphql.Field{Type: contractEnum},
			"deductions":      &graphql.Field{Type: graphql.NewList(deductionType)},
			"transactions":    &graphql.Field{Type: graphql.NewList(transactionType)},
		},
	})

	attendanceType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Attendance",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.ID},
			"guardId":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"date":        &graphql.Field{Type: graphql.String},
			"signin":      &graphql.Field{Type: graphql.String},
			"signout":     &graphql.Field{Type: graphql.String},
			"state":       &graphql.Field{Type: graphql.String},
			"hoursWorked": &graphql.Field{Type: graphql.Float},
		},
	})

	authorType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Author",
		Fields: graphql.Fields{
			"kind":    &graphql.Field{Type: graphql.String},
			"name":    &graphql.Field{Type: graphql.String},
			"picture": &graphql.Field{Type: graphql.String},
		},
	})
)

func timeOut(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t.UTC().Format(time.RFC3339)
}

func dateOut(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t.Format(time.DateOnly)
}

func nationalIDOut(n int64) any {
	if n == 0 {
		return nil
	}

	return strconv.FormatInt(n, 10)
}

func nullUUIDOut(id uuid.NullUUID) any {
	if !id.Valid {
		return nil
	}

	return id.UUID.String()
}

func tokenOut(t entity.Token) map[string]any {
	out := map[string]any{"ok": t.OK}

	if t.Token != "" {
		out["token"] = t.Token
	}

	if t.Error != "" {
		out["error"] = t.Error
	}

	return out
}

func adminOut(a entity.Admin) map[string]any {
	return map[string]any{
		"id":        a.ID.String(),
		"username":  a.Username,
		"email":     a.Email,
		"picture":   a.Picture,
		"createdAt": timeOut(a.CreatedAt),
	}
}

func locationOut(l entity.Location) map[string]any {
	return map[string]any{
		"id":        l.ID.String(),
		"name":      l.Name,
		"createdAt": timeOut(l.CreatedAt),
	}
}

func locationsOut(ls []entity.Location) []map[string]any {
	out := make([]map[string]any, 0, len(ls))
	for _, l := range ls {
		out = append(out, locationOut(l))
	}

	return out
}

func guardOut(g entity.Guard) map[string]any {
	return map[string]any{
		"id":            g.ID.String(),
		"guardId":       g.GuardID,
		"email":         g.Email,
		"surname":       g.Surname,
		"firstName":     g.FirstName,
		"lastName":      g.LastName,
		"dateOfBirth":   dateOut(g.DateOfBirth),
		"gender":        g.Gender,
		"nationalId":    nationalIDOut(g.NationalID),
		"postalAddress": g.PostalAddress,
		"cellphone":     g.Cellphone,
		"locationId":    nullUUIDOut(g.LocationID),
		"picture":       g.Picture,
		"employedAt":    dateOut(g.EmployedAt),
		"createdAt":     timeOut(g.CreatedAt),
	}
}

func guardsOut(gs []entity.Guard) []map[string]any {
	out := make([]map[string]any, 0, len(gs))
	for _, g := range gs {
		out = append(out, guardOut(g))
	}

	return out
}

func guardContactOut(g entity.Guard) map[string]any {
	return map[string]any{
		"guardId":       g.GuardID,
		"email":         g.Email,
		"postalAddress": g.PostalAddress,
		"cellphone":     g.Cellphone,
	}
}

func salaryOut(s entity.Salary) map[string]any {
	deductions := make([]map[string]any, 0, len(s.Deductions))
	for _, d := range s.Deductions {
		deductions = append(deductions, map[string]any{
			"name":   d.Name,
			"amount": d.Amount.String(),
		})
	}

	transactions := make([]map[string]any, 0, len(s.Transactions))
	for _, tx := range s.Transactions {
		transactions = append(transactions, map[string]any{
			"id":     tx.ID.String(),
			"date":   timeOut(tx.Date),
			"amount": tx.Amount.String(),
			"text":   tx.Text,
		})
	}

	return map[string]any{
		"id":              s.ID.String(),
		"guardId":         s.GuardID,
		"grossSalary":     s.Gross.String(),
		"totalDeductions": s.TotalDeductions().String(),
		"netSalary":       s.Net().String(),
		"contract":        string(s.Contract),
		"deductions":      deductions,
		"transactions":    transactions,
	}
}

func salariesOut(ss []entity.Salary) []map[string]any {
	out := make([]map[string]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, salaryOut(s))
	}

	return out
}

func attendanceOut(a entity.Attendance) map[string]any {
	out := map[string]any{
		"id":          a.ID.String(),
		"guardId":     a.GuardID,
		"date":        dateOut(a.Date),
		"signin":      timeOut(a.SignedInAt),
		"signout":     nil,
		"state":       string(a.State()),
		"hoursWorked": a.Worked().Hours(),
	}

	if a.SignedOutAt != nil {
		out["signout"] = timeOut(*a.SignedOutAt)
	}

	return out
}

func attendancesOut(as []entity.Attendance) []map[string]any {
	out := make([]map[string]any, 0, len(as))
	for _, a := range as {
		out = append(out, attendanceOut(a))
	}

	return out
}

// messageOut keeps the raw author so the author field can resolve it lazily.
func messageOut(m entity.Message) map[string]any {
	replies := make([]map[string]any, 0, len(m.Replies))
	for _, r := range m.Replies {
		replies = append(replies, map[string]any{
			"author":    r.Author,
			"body":      r.Body,
			"timestamp": timeOut(r.CreatedAt),
		})
	}

	return map[string]any{
		"id":        m.ID.String(),
		"author":    m.Author,
		"title":     m.Title,
		"body":      m.Body,
		"type":      string(m.Kind),
		"approved":  m.Approved,
		"createdAt": timeOut(m.CreatedAt),
		"replies":   replies,
	}
}

func messagesOut(ms []entity.Message) []map[string]any {
	out := make([]map[string]any, 0, len(ms))
	for _, m := range ms {
		out = append(out, messageOut(m))
	}

	return out
}
