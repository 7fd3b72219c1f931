package service

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samandr77/guardbook/internal/entity"
)

const (
	EmailMaxLen       = 255
	PasswordMinLen    = 8
	PasswordMaxLen    = 72
	NameMaxLen        = 100
	MessageBodyMaxLen = 5000
	LocationNameMax   = 100

	dateLayout = time.DateOnly
)

var (
	emailRegexp     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	cellphoneRegexp = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateEmail(email string) error {
	if email == "" {
		return entity.MissingField("email")
	}

	if len(email) > EmailMaxLen || !emailRegexp.MatchString(email) || strings.Contains(email, "..") {
		return entity.InvalidField("email")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return entity.MissingField("password")
	}

	if len(password) < PasswordMinLen || len(password) > PasswordMaxLen {
		return entity.InvalidField("password")
	}

	return nil
}

func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return entity.MissingField(field)
	}

	if utf8.RuneCountInString(name) > NameMaxLen {
		return entity.InvalidField(field)
	}

	return nil
}

func validateCellphone(phone string) error {
	if phone == "" {
		return nil
	}

	if !cellphoneRegexp.MatchString(phone) {
		return entity.InvalidField("cellphone")
	}

	return nil
}

func validateNewAdmin(in entity.NewAdmin) error {
	err := validateName("username", in.Username)
	if err != nil {
		return err
	}

	err = ValidateEmail(in.Email)
	if err != nil {
		return err
	}

	return validatePassword(in.Password)
}

func validateNewGuard(in entity.NewGuard) error {
	if in.GuardID <= 0 {
		return entity.MissingField("guardId")
	}

	err := ValidateEmail(in.Email)
	if err != nil {
		return err
	}

	err = validatePassword(in.Password)
	if err != nil {
		return err
	}

	err = validateBasicInfo(entity.GuardBasicInfo{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		NationalID: in.NationalID,
	})
	if err != nil {
		return err
	}

	err = validateCellphone(in.Cellphone)
	if err != nil {
		return err
	}

	if !in.Contract.IsValid() {
		return entity.InvalidField("contract")
	}

	if in.GrossSalary.IsNegative() {
		return entity.InvalidField("grossSalary")
	}

	for _, d := range in.Deductions {
		if strings.TrimSpace(d.Name) == "" {
			return entity.MissingField("deductions.name")
		}

		if d.Amount.IsNegative() {
			return entity.InvalidField("deductions.amount")
		}
	}

	return nil
}

func validateBasicInfo(info entity.GuardBasicInfo) error {
	err := validateName("firstName", info.FirstName)
	if err != nil {
		return err
	}

	err = validateName("lastName", info.LastName)
	if err != nil {
		return err
	}

	if info.NationalID < 0 {
		return entity.InvalidField("nationalId")
	}

	return nil
}

func validateContactInfo(info entity.GuardContactInfo) error {
	err := ValidateEmail(info.Email)
	if err != nil {
		return err
	}

	return validateCellphone(info.Cellphone)
}

func validateLocationName(name string) error {
	if name == "" {
		return entity.MissingField("name")
	}

	if utf8.RuneCountInString(name) > LocationNameMax {
		return entity.InvalidField("name")
	}

	return nil
}

func validateMessage(in entity.NewMessage) error {
	if strings.TrimSpace(in.Body) == "" {
		return entity.MissingField("body")
	}

	if utf8.RuneCountInString(in.Body) > MessageBodyMaxLen {
		return entity.InvalidField("body")
	}

	if !in.Kind.IsValid() {
		return entity.InvalidField("kind")
	}

	return nil
}

func validateReplyBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return entity.MissingField("body")
	}

	if utf8.RuneCountInString(body) > MessageBodyMaxLen {
		return entity.InvalidField("body")
	}

	return nil
}
