package trakt

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/rivo/uniseg"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, key := range []string{"path", "query", "body", "json"} {
			if name, _, _ := strings.Cut(f.Tag.Get(key), ","); name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	mustRegister(v, "minwords", validateMinWords)
	mustRegister(v, "twoletter", validateTwoLetter)
	mustRegister(v, "notrailingslash", validateNoTrailingSlash)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validator returns the validator used by Build. Packages outside the core
// use it to register additional tags before any endpoint is built.
func Validator() *validator.Validate { return validate }

func validateMinWords(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return CountWords(fl.Field().String()) >= min
}

func validateTwoLetter(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func validateNoTrailingSlash(fl validator.FieldLevel) bool {
	return !strings.HasSuffix(fl.Field().String(), "/")
}

// CountWords counts the Unicode words in s, ignoring punctuation and whitespace.
func CountWords(s string) int {
	n := 0
	state := -1
	var word string
	for len(s) > 0 {
		word, s, state = uniseg.FirstWordInString(s, state)
		if isWord(word) {
			n++
		}
	}
	return n
}

func isWord(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
