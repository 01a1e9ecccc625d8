package lesson

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Student identifies who a portfolio belongs to.
type Student struct {
	Name      string `json:"name" validate:"required,max=64"`
	ClassName string `json:"className" validate:"omitempty,max=32"`
	SeatNo    string `json:"seatNo" validate:"omitempty,max=8"`
}

// Validate trims the fields and checks them.
func (s *Student) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	s.ClassName = strings.TrimSpace(s.ClassName)
	s.SeatNo = strings.TrimSpace(s.SeatNo)

	err := validate.Struct(s)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fmt.Errorf("student %s is required", strings.ToLower(fe.Field()))
		}
		return fmt.Errorf("student %s is too long (max %s)", strings.ToLower(fe.Field()), fe.Param())
	}
	return err
}

// Portfolio is a printable record of one finished lesson.
type Portfolio struct {
	Student     Student
	Lesson      LessonContent
	Report      Report
	GeneratedAt time.Time
}

// NewPortfolio validates the student and scores the answers.
func NewPortfolio(student Student, lesson LessonContent, answers []Answer, now time.Time) (*Portfolio, error) {
	if err := student.Validate(); err != nil {
		return nil, err
	}
	lesson.ensureArrays()
	return &Portfolio{
		Student:     student,
		Lesson:      lesson,
		Report:      Score(lesson.Quiz, answers),
		GeneratedAt: now,
	}, nil
}

//go:embed portfolio.html.tmpl
var portfolioHTML string

var portfolioTemplate = template.Must(template.New("portfolio").Funcs(template.FuncMap{
	"zhAt": func(zh []string, i int) string {
		if i < len(zh) {
			return zh[i]
		}
		return ""
	},
}).Parse(portfolioHTML))

// Render writes the portfolio as a standalone HTML page.
func (p *Portfolio) Render(w io.Writer) error {
	return portfolioTemplate.Execute(w, p)
}
