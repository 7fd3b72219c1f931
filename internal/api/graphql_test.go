package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/guardbook/internal/api"
	"github.com/samandr77/guardbook/internal/entity"
)

type gqlError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors"`
}

func (c Tester) graphql(t *testing.T, token, query string, variables map[string]any) gqlResponse {
	t.Helper()

	body, err := json.Marshal(api.GraphQLRequest{Query: query, Variables: variables})
	require.NoError(t, err)

	resp := c.post(t, "/api/graphql", token, "application/json", body)
	require.Equal(t, 200, resp.StatusCode)

	return decode[gqlResponse](t, resp)
}

func requireCode(t *testing.T, res gqlResponse, code api.ErrorCode) {
	t.Helper()

	require.Len(t, res.Errors, 1)
	require.Equal(t, string(code), res.Errors[0].Extensions["code"])
}

func field[T any](t *testing.T, res gqlResponse, name string) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(res.Data[name], &v))

	return v
}

type tokenResult struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
	Error string `json:"error"`
}

func TestGraphQL_LoginFailureIsUniform(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	c.repo.EXPECT().AdminByEmail(gomock.Any(), "nobody@example.com").Return(entity.Admin{}, entity.ErrNotFound)
	c.repo.EXPECT().GuardByEmail(gomock.Any(), "guard@example.com").
		Return(entity.Guard{GuardID: testGuardID, PasswordHash: "$2a$04$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva"}, nil)

	admin := c.graphql(t, "", `mutation { login(email: "nobody@example.com", password: "x") { ok token error } }`, nil)
	require.Empty(t, admin.Errors)

	guard := c.graphql(t, "", `mutation { guardLogin(email: "guard@example.com", password: "x") { ok token error } }`, nil)
	require.Empty(t, guard.Errors)

	adminRes := field[tokenResult](t, admin, "login")
	guardRes := field[tokenResult](t, guard, "guardLogin")

	require.False(t, adminRes.OK)
	require.Empty(t, adminRes.Token)
	require.Equal(t, entity.UniformLoginFailure, adminRes.Error)
	require.Equal(t, adminRes, guardRes)
}

func TestGraphQL_Unauthenticated(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	const q = `mutation { signIn(guard_id: 7, date: "2024-01-01", signin: "08:00") { id } }`

	res := c.graphql(t, "", q, nil)
	requireCode(t, res, api.CodeUnauthenticated)
	require.Equal(t, "Authentication required", res.Errors[0].Message)
	require.Equal(t, "null", string(res.Data["signIn"]))

	res = c.graphql(t, "expired", q, nil)
	requireCode(t, res, api.CodeUnauthenticated)
	require.Equal(t, "Invalid or expired token", res.Errors[0].Message)
}

type attendanceResult struct {
	GuardID int64   `json:"guardId"`
	Date    string  `json:"date"`
	SignIn  string  `json:"signin"`
	SignOut *string `json:"signout"`
	State   string  `json:"state"`
	Hours   float64 `json:"hoursWorked"`
}

func TestGraphQL_SignIn(t *testing.T) {
	t.Parallel()

	guard := entity.Guard{ID: testGuard.ID, GuardID: testGuardID, FirstName: "John", LastName: "Doe"}

	const q = `mutation($date: String!, $at: String!) {
		signIn(guard_id: 7, date: $date, signin: $at) { guardId date signin signout state }
	}`

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		c := NewTester(t)

		c.repo.EXPECT().GuardByGuardID(gomock.Any(), testGuardID).Return(guard, nil)
		c.repo.EXPECT().CreateAttendance(gomock.Any(), gomock.Any()).Return(nil)

		res := c.graphql(t, guardToken, q, map[string]any{"date": "2024-01-01", "at": "08:00"})
		require.Empty(t, res.Errors)

		got := field[attendanceResult](t, res, "signIn")
		require.Equal(t, attendanceResult{
			GuardID: testGuardID,
			Date:    "2024-01-01",
			SignIn:  "2024-01-01T08:00:00Z",
			State:   string(entity.AttendanceSignedIn),
		}, got)
	})

	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()

		c := NewTester(t)

		c.repo.EXPECT().GuardByGuardID(gomock.Any(), testGuardID).Return(guard, nil)
		c.repo.EXPECT().CreateAttendance(gomock.Any(), gomock.Any()).Return(entity.ErrDuplicateSignIn)

		res := c.graphql(t, guardToken, q, map[string]any{"date": "2024-01-01", "at": "08:00"})
		requireCode(t, res, api.CodeConflict)
	})

	t.Run("bad date", func(t *testing.T) {
		t.Parallel()

		c := NewTester(t)

		c.repo.EXPECT().GuardByGuardID(gomock.Any(), testGuardID).Return(guard, nil)

		res := c.graphql(t, guardToken, q, map[string]any{"date": "01/01/2024", "at": "08:00"})
		requireCode(t, res, api.CodeBadUserInput)
		require.Equal(t, "Invalid value: date", res.Errors[0].Message)
	})

	t.Run("other guard", func(t *testing.T) {
		t.Parallel()

		c := NewTester(t)

		res := c.graphql(t, guardToken,
			`mutation { signIn(guard_id: 8, date: "2024-01-01", signin: "08:00") { id } }`, nil)
		requireCode(t, res, api.CodeForbidden)
	})
}

func TestGraphQL_SignOutPostsDailyWage(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	guard := entity.Guard{ID: testGuard.ID, GuardID: testGuardID, FirstName: "John", LastName: "Doe"}
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	in := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 1, 17, 0, 0, 0, time.UTC)

	salary := entity.Salary{
		ID:       uuid.Must(uuid.NewV4()),
		GuardID:  testGuardID,
		Gross:    decimal.NewFromInt(1000),
		Contract: entity.ContractDay,
	}

	c.repo.EXPECT().GuardByGuardID(gomock.Any(), testGuardID).Return(guard, nil)
	c.repo.EXPECT().Attendance(gomock.Any(), testGuardID, day).
		Return(entity.Attendance{GuardID: testGuardID, Date: day, SignedInAt: in}, nil)
	c.repo.EXPECT().CompleteAttendance(gomock.Any(), testGuardID, day, out).
		Return(entity.Attendance{GuardID: testGuardID, Date: day, SignedInAt: in, SignedOutAt: &out}, nil)
	c.repo.EXPECT().SalaryByGuardID(gomock.Any(), testGuardID).Return(salary, nil)
	c.repo.EXPECT().AppendSalaryTransaction(gomock.Any(), testGuardID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, tx entity.PayrollTransaction) (entity.Salary, error) {
			require.Equal(t, "Guard ID: 7, Salary for the day: KES 1000", tx.Text)

			salary.Transactions = append(salary.Transactions, tx)

			return salary, nil
		})
	c.producerMock.EXPECT().SendWagePosted(gomock.Any(), gomock.Any())

	res := c.graphql(t, guardToken,
		`mutation { signOut(guard_id: 7, date: "2024-01-01", signout: "17:00") { state signout hoursWorked } }`, nil)
	require.Empty(t, res.Errors)

	got := field[attendanceResult](t, res, "signOut")
	require.Equal(t, string(entity.AttendanceComplete), got.State)
	require.NotNil(t, got.SignOut)
	require.Equal(t, "2024-01-01T17:00:00Z", *got.SignOut)
	require.InDelta(t, 9.0, got.Hours, 0.001)
}

func TestGraphQL_SignOutWithoutSignIn(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	c.repo.EXPECT().GuardByGuardID(gomock.Any(), testGuardID).Return(entity.Guard{GuardID: testGuardID}, nil)
	c.repo.EXPECT().Attendance(gomock.Any(), testGuardID, gomock.Any()).Return(entity.Attendance{}, entity.ErrNotFound)

	res := c.graphql(t, adminToken,
		`mutation { signOut(guard_id: 7, date: "2024-01-01", signout: "17:00") { state } }`, nil)
	requireCode(t, res, api.CodeConflict)
	require.Equal(t, "Guard has not signed in on this date", res.Errors[0].Message)
}

type authorResult struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type messageResult struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Approved bool         `json:"approved"`
	Author   authorResult `json:"author"`
	Replies  []struct {
		Body   string       `json:"body"`
		Author authorResult `json:"author"`
	} `json:"replies"`
}

func TestGraphQL_GetMessage(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	now := time.Now().UTC()
	m := entity.Message{
		ID:     uuid.Must(uuid.NewV4()),
		Author: entity.GuardAuthor{GuardID: testGuardID},
		Body:   "I need Friday off",
		Kind:   entity.MessageLeave,
		Replies: []entity.Reply{
			{Author: entity.GuardAuthor{GuardID: testGuardID}, Body: "second", CreatedAt: now.Add(time.Minute)},
			{Author: entity.AdminAuthor{AdminID: testAdmin.ID}, Body: "first", CreatedAt: now},
		},
		CreatedAt: now.Add(-time.Hour),
	}

	c.repo.EXPECT().Message(gomock.Any(), m.ID).Return(m, nil)
	c.repo.EXPECT().GuardByGuardID(gomock.Any(), testGuardID).
		Return(entity.Guard{GuardID: testGuardID, FirstName: "John", LastName: "Doe", Picture: "7/john.png"}, nil).
		Times(2)

	res := c.graphql(t, adminToken, `query($id: ID!) {
		getMessage(id: $id) { id type approved author { kind name picture } replies { body author { kind name picture } } }
	}`, map[string]any{"id": m.ID.String()})
	require.Empty(t, res.Errors)

	got := field[messageResult](t, res, "getMessage")
	require.Equal(t, m.ID.String(), got.ID)
	require.Equal(t, "leave", got.Type)
	require.Equal(t, authorResult{Kind: "guard", Name: "John Doe", Picture: "7/john.png"}, got.Author)
	require.Len(t, got.Replies, 2)
	require.Equal(t, "first", got.Replies[0].Body)
	require.Equal(t, authorResult{Kind: "admin", Name: "Administrator", Picture: "default.jpg"}, got.Replies[0].Author)
	require.Equal(t, "second", got.Replies[1].Body)
}

func TestGraphQL_ApproveLeave(t *testing.T) {
	t.Parallel()

	id := uuid.Must(uuid.NewV4())

	t.Run("admin", func(t *testing.T) {
		t.Parallel()

		c := NewTester(t)

		c.repo.EXPECT().SetApproved(gomock.Any(), id).
			Return(entity.Message{ID: id, Author: entity.GuardAuthor{GuardID: testGuardID}, Kind: entity.MessageLeave, Approved: true}, nil)

		res := c.graphql(t, adminToken, `mutation($id: ID!) { approveLeave(id: $id) { id approved } }`,
			map[string]any{"id": id.String()})
		require.Empty(t, res.Errors)
		require.True(t, field[messageResult](t, res, "approveLeave").Approved)
	})

	t.Run("guard", func(t *testing.T) {
		t.Parallel()

		c := NewTester(t)

		res := c.graphql(t, guardToken, `mutation($id: ID!) { approveLeave(id: $id) { id approved } }`,
			map[string]any{"id": id.String()})
		requireCode(t, res, api.CodeForbidden)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()

		c := NewTester(t)

		res := c.graphql(t, adminToken, `mutation { approveLeave(id: "nope") { id } }`, nil)
		requireCode(t, res, api.CodeBadUserInput)
	})
}

func TestGraphQL_NewMessage(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	c.repo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m entity.Message) error {
			require.Equal(t, entity.GuardAuthor{GuardID: testGuardID}, m.Author)
			require.False(t, m.Approved)
			require.Empty(t, m.Replies)

			return nil
		})

	res := c.graphql(t, guardToken,
		`mutation { newMessage(title: " Shift ", body: "All quiet at gate B", type: report) { type approved replies { body } } }`, nil)
	require.Empty(t, res.Errors)

	got := field[messageResult](t, res, "newMessage")
	require.Equal(t, "report", got.Type)
	require.False(t, got.Approved)
	require.Empty(t, got.Replies)
}

func TestGraphQL_DeleteLocationInUse(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	id := uuid.Must(uuid.NewV4())

	c.repo.EXPECT().CountGuardsInLocation(gomock.Any(), id).Return(3, nil)

	res := c.graphql(t, adminToken, `mutation($id: ID!) { deleteLocation(id: $id) }`, map[string]any{"id": id.String()})
	requireCode(t, res, api.CodeConflict)
}

func TestGraphQL_InternalErrorIsHidden(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	c.repo.EXPECT().Salaries(gomock.Any()).Return(nil, errors.New("connection reset by peer"))

	res := c.graphql(t, adminToken, `{ getAllSalaries { guardId } }`, nil)
	requireCode(t, res, api.CodeInternal)
	require.Equal(t, "Internal error", res.Errors[0].Message)
}

func TestGraphQL_GetGuardPaymentInfo(t *testing.T) {
	t.Parallel()

	c := NewTester(t)

	c.repo.EXPECT().SalaryByGuardID(gomock.Any(), testGuardID).Return(entity.Salary{
		GuardID:  testGuardID,
		Gross:    decimal.NewFromInt(30000),
		Contract: entity.ContractMonth,
		Deductions: []entity.Deduction{
			{Name: "paye", Amount: decimal.NewFromInt(2500)},
			{Name: "nhif", Amount: decimal.NewFromInt(500)},
		},
	}, nil)

	res := c.graphql(t, guardToken,
		`{ getGuardPaymentInfo(guard_id: 7) { grossSalary totalDeductions netSalary contract deductions { name amount } } }`, nil)
	require.Empty(t, res.Errors)

	var got struct {
		Gross      string `json:"grossSalary"`
		Total      string `json:"totalDeductions"`
		Net        string `json:"netSalary"`
		Contract   string `json:"contract"`
		Deductions []struct {
			Name   string `json:"name"`
			Amount string `json:"amount"`
		} `json:"deductions"`
	}

	require.NoError(t, json.Unmarshal(res.Data["getGuardPaymentInfo"], &got))
	require.Equal(t, "30000", got.Gross)
	require.Equal(t, "3000", got.Total)
	require.Equal(t, "27000", got.Net)
	require.Equal(t, "month", got.Contract)
	require.Len(t, got.Deductions, 2)
	require.Equal(t, "paye", got.Deductions[0].Name)
}

func TestGraphQL_UpdateGuardBasicInfoNationalID(t *testing.T) {
	t.Parallel()

	const q = `mutation($nid: String) {
		updateGuardBasicInfo(guard_id: 7, first_name: "John", last_name: "Doe", national_id: $nid) { guardId nationalId }
	}`

	t.Run("beyond 32 bits", func(t *testing.T) {
		t.Parallel()

		c := NewTester(t)

		const nationalID int64 = 31234567890

		c.repo.EXPECT().UpdateGuardBasicInfo(gomock.Any(), testGuardID, gomock.Any()).
			DoAndReturn(func(_ context.Context, guardID int64, info entity.GuardBasicInfo) (entity.Guard, error) {
				require.Equal(t, nationalID, info.NationalID)

				return entity.Guard{GuardID: guardID, FirstName: info.FirstName, LastName: info.LastName, NationalID: info.NationalID}, nil
			})

		res := c.graphql(t, adminToken, q, map[string]any{"nid": "31234567890"})
		require.Empty(t, res.Errors)

		var got struct {
			GuardID    int64   `json:"guardId"`
			NationalID *string `json:"nationalId"`
		}

		require.NoError(t, json.Unmarshal(res.Data["updateGuardBasicInfo"], &got))
		require.Equal(t, testGuardID, got.GuardID)
		require.NotNil(t, got.NationalID)
		require.Equal(t, "31234567890", *got.NationalID)
	})

	t.Run("not a number", func(t *testing.T) {
		t.Parallel()

		c := NewTester(t)

		res := c.graphql(t, adminToken, q, map[string]any{"nid": "12ab"})
		requireCode(t, res, api.CodeBadUserInput)
	})
}
