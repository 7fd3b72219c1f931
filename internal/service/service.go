package service

import (
	"context"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/guardbook/internal/entity"
	"github.com/samandr77/guardbook/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateAdmin(ctx context.Context, a entity.Admin) error
	AdminByEmail(ctx context.Context, email string) (entity.Admin, error)
	AdminByID(ctx context.Context, id uuid.UUID) (entity.Admin, error)

	CreateGuard(ctx context.Context, g entity.Guard, s entity.Salary) error
	Guard(ctx context.Context, id uuid.UUID) (entity.Guard, error)
	GuardByGuardID(ctx context.Context, guardID int64) (entity.Guard, error)
	GuardByEmail(ctx context.Context, email string) (entity.Guard, error)
	GuardByNationalID(ctx context.Context, nationalID int64) (entity.Guard, error)
	Guards(ctx context.Context, f entity.GuardFilter) ([]entity.Guard, error)
	UpdateGuardBasicInfo(ctx context.Context, guardID int64, info entity.GuardBasicInfo) (entity.Guard, error)
	UpdateGuardContactInfo(ctx context.Context, guardID int64, info entity.GuardContactInfo) (entity.Guard, error)
	UpdateGuardPicture(ctx context.Context, guardID int64, picture string) (entity.Guard, error)
	UpdateGuardPassword(ctx context.Context, guardID int64, passwordHash string) error
	CountGuardsInLocation(ctx context.Context, locationID uuid.UUID) (int, error)

	CreateLocation(ctx context.Context, l entity.Location) error
	UpdateLocation(ctx context.Context, id uuid.UUID, name string) (entity.Location, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error
	Location(ctx context.Context, id uuid.UUID) (entity.Location, error)
	LocationByName(ctx context.Context, name string) (entity.Location, error)
	Locations(ctx context.Context) ([]entity.Location, error)

	SalaryByGuardID(ctx context.Context, guardID int64) (entity.Salary, error)
	Salaries(ctx context.Context) ([]entity.Salary, error)
	SalariesByContract(ctx context.Context, contract entity.ContractKind) ([]entity.Salary, error)
	AppendSalaryTransaction(ctx context.Context, guardID int64, tx entity.PayrollTransaction) (entity.Salary, error)

	CreateAttendance(ctx context.Context, a entity.Attendance) error
	Attendance(ctx context.Context, guardID int64, day time.Time) (entity.Attendance, error)
	CompleteAttendance(ctx context.Context, guardID int64, day time.Time, signedOutAt time.Time) (entity.Attendance, error)
	AttendanceByGuard(ctx context.Context, guardID int64) ([]entity.Attendance, error)
	AllAttendance(ctx context.Context, f entity.AttendanceFilter) ([]entity.Attendance, error)

	CreateMessage(ctx context.Context, m entity.Message) error
	Message(ctx context.Context, id uuid.UUID) (entity.Message, error)
	AppendReply(ctx context.Context, id uuid.UUID, reply entity.Reply) (entity.Message, error)
	SetApproved(ctx context.Context, id uuid.UUID) (entity.Message, error)
	Messages(ctx context.Context, f entity.MessageFilter) ([]entity.Message, error)
}

// Producer publishes domain events. Delivery failures are logged by the producer and never returned.
type Producer interface {
	SendWagePosted(ctx context.Context, event entity.WagePosted)
}

type FileStorage interface {
	Store(ctx context.Context, r io.Reader, path, contentType string) error
}

type Service struct {
	cfg      config.Config
	repo     Repository
	producer Producer
	storage  FileStorage
	loc      *time.Location
	now      func() time.Time
}

func New(cfg config.Config, repo Repository, producer Producer, storage FileStorage) *Service {
	loc, err := cfg.Attendance.Location()
	if err != nil {
		loc = time.UTC
	}

	return &Service{
		cfg:      cfg,
		repo:     repo,
		producer: producer,
		storage:  storage,
		loc:      loc,
		now:      time.Now,
	}
}
