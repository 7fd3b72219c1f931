package api

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/samandr77/guardbook/internal/entity"
)

type resolvers struct {
	s Service
}

func (r *resolvers) login(p graphql.ResolveParams) (any, error) {
	token, err := r.s.Login(p.Context, argString(p, "email"), argString(p, "password"))
	return loginResult(token, err)
}

func (r *resolvers) guardLogin(p graphql.ResolveParams) (any, error) {
	token, err := r.s.GuardLogin(p.Context, argString(p, "email"), argString(p, "password"))
	return loginResult(token, err)
}

// loginResult reports bad credentials in the payload rather than as an error.
func loginResult(token string, err error) (any, error) {
	if isInvalidCredentials(err) {
		return tokenOut(entity.Token{OK: false, Error: entity.UniformLoginFailure}), nil
	}

	if err != nil {
		return nil, err
	}

	return tokenOut(entity.Token{OK: true, Token: token}), nil
}

func (r *resolvers) signup(p graphql.ResolveParams) (any, error) {
	admin, err := r.s.Signup(p.Context, entity.NewAdmin{
		Username: argString(p, "username"),
		Email:    argString(p, "email"),
		Password: argString(p, "password"),
	})
	if err != nil {
		return nil, err
	}

	return adminOut(admin), nil
}

func (r *resolvers) confirmPassword(p graphql.ResolveParams) (any, error) {
	return r.s.ConfirmPassword(p.Context, argInt64(p, "guard_id"), argString(p, "password"))
}

func (r *resolvers) changePassword(p graphql.ResolveParams) (any, error) {
	err := r.s.ChangePassword(p.Context, argInt64(p, "guard_id"),
		argString(p, "current_password"), argString(p, "new_password"))
	if err != nil {
		return nil, err
	}

	return true, nil
}

func (r *resolvers) signIn(p graphql.ResolveParams) (any, error) {
	a, err := r.s.SignIn(p.Context, argInt64(p, "guard_id"), argString(p, "date"), argString(p, "signin"))
	if err != nil {
		return nil, err
	}

	return attendanceOut(a), nil
}

func (r *resolvers) signOut(p graphql.ResolveParams) (any, error) {
	a, err := r.s.SignOut(p.Context, argInt64(p, "guard_id"), argString(p, "date"), argString(p, "signout"))
	if err != nil {
		return nil, err
	}

	return attendanceOut(a), nil
}

func (r *resolvers) guardAttendance(p graphql.ResolveParams) (any, error) {
	as, err := r.s.GuardAttendance(p.Context, argInt64(p, "guard_id"))
	if err != nil {
		return nil, err
	}

	return attendancesOut(as), nil
}

func (r *resolvers) allAttendance(p graphql.ResolveParams) (any, error) {
	var f entity.AttendanceFilter

	if _, ok := p.Args["guard_id"]; ok {
		id := argInt64(p, "guard_id")
		f.GuardID = &id
	}

	from, err := argDate(p, "from")
	if err != nil {
		return nil, err
	}

	if !from.IsZero() {
		f.From = &from
	}

	to, err := argDate(p, "to")
	if err != nil {
		return nil, err
	}

	if !to.IsZero() {
		f.To = &to
	}

	as, err := r.s.AllAttendance(p.Context, f)
	if err != nil {
		return nil, err
	}

	return attendancesOut(as), nil
}

func (r *resolvers) guardPaymentInfo(p graphql.ResolveParams) (any, error) {
	salary, err := r.s.GuardPaymentInfo(p.Context, argInt64(p, "guard_id"))
	if err != nil {
		return nil, err
	}

	return salaryOut(salary), nil
}

func (r *resolvers) allSalaries(p graphql.ResolveParams) (any, error) {
	ss, err := r.s.AllSalaries(p.Context)
	if err != nil {
		return nil, err
	}

	return salariesOut(ss), nil
}

func (r *resolvers) newMessage(p graphql.ResolveParams) (any, error) {
	m, err := r.s.PostMessage(p.Context, entity.NewMessage{
		Title: argString(p, "title"),
		Body:  argString(p, "body"),
		Kind:  entity.MessageKind(argString(p, "type")),
	})
	if err != nil {
		return nil, err
	}

	return messageOut(m), nil
}

func (r *resolvers) newMessageReply(p graphql.ResolveParams) (any, error) {
	id, err := argUUID(p, "id")
	if err != nil {
		return nil, err
	}

	m, err := r.s.ReplyToMessage(p.Context, id, argString(p, "body"))
	if err != nil {
		return nil, err
	}

	return messageOut(m), nil
}

func (r *resolvers) approveLeave(p graphql.ResolveParams) (any, error) {
	id, err := argUUID(p, "id")
	if err != nil {
		return nil, err
	}

	m, err := r.s.ApproveLeave(p.Context, id)
	if err != nil {
		return nil, err
	}

	return messageOut(m), nil
}

func (r *resolvers) inbox(p graphql.ResolveParams) (any, error) {
	ms, err := r.s.Inbox(p.Context, argInt64(p, "guard_id"))
	if err != nil {
		return nil, err
	}

	return messagesOut(ms), nil
}

func (r *resolvers) allInbox(p graphql.ResolveParams) (any, error) {
	ms, err := r.s.AllInbox(p.Context, entity.MessageKind(argString(p, "type")))
	if err != nil {
		return nil, err
	}

	return messagesOut(ms), nil
}

func (r *resolvers) message(p graphql.ResolveParams) (any, error) {
	id, err := argUUID(p, "id")
	if err != nil {
		return nil, err
	}

	m, err := r.s.Message(p.Context, id)
	if err != nil {
		return nil, err
	}

	return messageOut(m), nil
}

func (r *resolvers) registerGuard(p graphql.ResolveParams) (any, error) {
	locationID, err := argNullUUID(p, "location_id")
	if err != nil {
		return nil, err
	}

	dob, err := argDate(p, "date_of_birth")
	if err != nil {
		return nil, err
	}

	employedAt, err := argDate(p, "employed_at")
	if err != nil {
		return nil, err
	}

	gross, err := argDecimal(p.Args["gross_salary"], "gross_salary")
	if err != nil {
		return nil, err
	}

	deductions, err := argDeductions(p)
	if err != nil {
		return nil, err
	}

	nationalID, err := argNationalID(p)
	if err != nil {
		return nil, err
	}

	g, err := r.s.RegisterGuard(p.Context, entity.NewGuard{
		GuardID:       argInt64(p, "guard_id"),
		Email:         argString(p, "email"),
		Password:      argString(p, "password"),
		Surname:       argString(p, "surname"),
		FirstName:     argString(p, "first_name"),
		LastName:      argString(p, "last_name"),
		DateOfBirth:   dob,
		Gender:        argString(p, "gender"),
		NationalID:    nationalID,
		PostalAddress: argString(p, "postal_address"),
		Cellphone:     argString(p, "cellphone"),
		LocationID:    locationID,
		EmployedAt:    employedAt,
		Contract:      entity.ContractKind(argString(p, "contract")),
		GrossSalary:   gross,
		Deductions:    deductions,
	})
	if err != nil {
		return nil, err
	}

	return guardOut(g), nil
}

func (r *resolvers) updateGuardBasicInfo(p graphql.ResolveParams) (any, error) {
	locationID, err := argNullUUID(p, "location_id")
	if err != nil {
		return nil, err
	}

	var dob, employedAt time.Time

	if dob, err = argDate(p, "date_of_birth"); err != nil {
		return nil, err
	}

	if employedAt, err = argDate(p, "employed_at"); err != nil {
		return nil, err
	}

	nationalID, err := argNationalID(p)
	if err != nil {
		return nil, err
	}

	g, err := r.s.UpdateGuardBasicInfo(p.Context, argInt64(p, "guard_id"), entity.GuardBasicInfo{
		Surname:     argString(p, "surname"),
		FirstName:   argString(p, "first_name"),
		LastName:    argString(p, "last_name"),
		DateOfBirth: dob,
		Gender:      argString(p, "gender"),
		NationalID:  nationalID,
		LocationID:  locationID,
		EmployedAt:  employedAt,
	})
	if err != nil {
		return nil, err
	}

	return guardOut(g), nil
}

func (r *resolvers) updateGuardContactInfo(p graphql.ResolveParams) (any, error) {
	g, err := r.s.UpdateGuardContactInfo(p.Context, argInt64(p, "guard_id"), entity.GuardContactInfo{
		Email:         argString(p, "email"),
		PostalAddress: argString(p, "postal_address"),
		Cellphone:     argString(p, "cellphone"),
	})
	if err != nil {
		return nil, err
	}

	return guardOut(g), nil
}

func (r *resolvers) guardInfo(p graphql.ResolveParams) (any, error) {
	g, err := r.s.GuardInfo(p.Context, argInt64(p, "guard_id"))
	if err != nil {
		return nil, err
	}

	return guardOut(g), nil
}

func (r *resolvers) guardContactInfo(p graphql.ResolveParams) (any, error) {
	g, err := r.s.GuardInfo(p.Context, argInt64(p, "guard_id"))
	if err != nil {
		return nil, err
	}

	return guardContactOut(g), nil
}

func (r *resolvers) allGuards(p graphql.ResolveParams) (any, error) {
	locationID, err := argNullUUID(p, "location_id")
	if err != nil {
		return nil, err
	}

	limit, offset := argInt64(p, "limit"), argInt64(p, "offset")
	if limit < 0 || offset < 0 {
		return nil, entity.InvalidField("limit")
	}

	gs, err := r.s.AllGuards(p.Context, entity.GuardFilter{
		LocationID: locationID,
		Limit:      uint64(limit),
		Offset:     uint64(offset),
	})
	if err != nil {
		return nil, err
	}

	return guardsOut(gs), nil
}

func (r *resolvers) guardsInLocation(p graphql.ResolveParams) (any, error) {
	id, err := argUUID(p, "location_id")
	if err != nil {
		return nil, err
	}

	gs, err := r.s.GuardsInLocation(p.Context, id)
	if err != nil {
		return nil, err
	}

	return guardsOut(gs), nil
}

func (r *resolvers) guardExists(p graphql.ResolveParams) (any, error) {
	return r.s.GuardExists(p.Context, argString(p, "email"))
}

func (r *resolvers) addLocation(p graphql.ResolveParams) (any, error) {
	l, err := r.s.AddLocation(p.Context, argString(p, "name"))
	if err != nil {
		return nil, err
	}

	return locationOut(l), nil
}

func (r *resolvers) updateLocation(p graphql.ResolveParams) (any, error) {
	id, err := argUUID(p, "id")
	if err != nil {
		return nil, err
	}

	l, err := r.s.UpdateLocation(p.Context, id, argString(p, "name"))
	if err != nil {
		return nil, err
	}

	return locationOut(l), nil
}

func (r *resolvers) deleteLocation(p graphql.ResolveParams) (any, error) {
	id, err := argUUID(p, "id")
	if err != nil {
		return nil, err
	}

	if err := r.s.DeleteLocation(p.Context, id); err != nil {
		return nil, err
	}

	return true, nil
}

func (r *resolvers) locations(p graphql.ResolveParams) (any, error) {
	ls, err := r.s.Locations(p.Context)
	if err != nil {
		return nil, err
	}

	return locationsOut(ls), nil
}

func (r *resolvers) location(p graphql.ResolveParams) (any, error) {
	id, err := argUUID(p, "id")
	if err != nil {
		return nil, err
	}

	l, err := r.s.Location(p.Context, id)
	if err != nil {
		return nil, err
	}

	return locationOut(l), nil
}

func (r *resolvers) locationExists(p graphql.ResolveParams) (any, error) {
	return r.s.LocationExists(p.Context, argString(p, "name"))
}
