package fielddefs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name       string
	Age        int
	BirthMonth int
}

// personSchema declares the schema exercised by the end-to-end tests:
// default-only fields, a display override, a human-name override, and a
// custom read/write pair deriving one field from another.
func personSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := New("Person", func(s *Schema) {
		s.Field("name")
		s.Field("age").WithDisplay(func(v any) string {
			return fmt.Sprintf("%v years old", v)
		})
		s.Field("calorie_intake").WithHumanName("% Daily value USDA recommended intake")
		s.Field("auspicious_fortune").Label("personality_trait")
		s.Field("zodiac_sign").
			Label("personality_trait").
			WithReader(func(subject any) (any, error) {
				p := subject.(*person)
				if p.BirthMonth == 1 || p.BirthMonth == 2 {
					return "possibly Aquarius", nil
				}
				return "not Aquarius", nil
			}).
			WithWriter(func(subject, value any) error {
				p := subject.(*person)
				if value == "possibly Aquarius" {
					p.BirthMonth = 2
				} else {
					p.BirthMonth = 6
				}
				return nil
			})
	})
	require.NoError(t, err)
	return s
}

func TestPersonSchemaEndToEnd(t *testing.T) {
	t.Cleanup(FlushAttributeCache)

	s := personSchema(t)

	t.Run("labeled attributes humanize unoverridden names", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"auspicious_fortune": "Auspicious fortune",
			"zodiac_sign":        "Zodiac sign",
		}, s.AttributesLabeled("personality_trait"))
	})

	t.Run("all attributes include overridden human names", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"name":               "Name",
			"age":                "Age",
			"calorie_intake":     "% Daily value USDA recommended intake",
			"auspicious_fortune": "Auspicious fortune",
			"zodiac_sign":        "Zodiac sign",
		}, s.Attributes())
	})

	t.Run("age display trait", func(t *testing.T) {
		display := s.FieldCalled("age").Display()
		require.NotNil(t, display)
		assert.Equal(t, "5 years old", display(5))
	})

	t.Run("zodiac sign derives birth month", func(t *testing.T) {
		p := &person{}
		write := s.FieldCalled("zodiac_sign").Writer()
		read := s.FieldCalled("zodiac_sign").Reader()
		require.NotNil(t, write)
		require.NotNil(t, read)

		require.NoError(t, write(p, "not Aquarius"))
		assert.Equal(t, 6, p.BirthMonth)

		v, err := read(p)
		require.NoError(t, err)
		assert.Equal(t, "not Aquarius", v)

		require.NoError(t, write(p, "possibly Aquarius"))
		assert.Equal(t, 2, p.BirthMonth)

		p.BirthMonth = 1
		v, err = read(p)
		require.NoError(t, err)
		assert.Equal(t, "possibly Aquarius", v)
	})

	t.Run("calorie intake human name", func(t *testing.T) {
		assert.Equal(t, "% Daily value USDA recommended intake",
			s.FieldCalled("calorie_intake").HumanName())
	})

	t.Run("display for composes read and display", func(t *testing.T) {
		out, err := s.DisplayFor(&person{Age: 5}, "age")
		require.NoError(t, err)
		assert.Equal(t, "5 years old", out)

		out, err = s.DisplayFor(&person{Name: "Ada"}, "name")
		require.NoError(t, err)
		assert.Equal(t, "Ada", out)
	})
}

func ExampleNew() {
	schema, err := New("Person", func(s *Schema) {
		s.Field("age").WithDisplay(func(v any) string {
			return fmt.Sprintf("%v years old", v)
		})
		s.Field("zodiac_sign").Label("personality_trait")
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(schema.FieldCalled("age").Display()(5))
	fmt.Println(schema.FieldCalled("zodiac_sign").HumanName())
	// Output:
	// 5 years old
	// Zodiac sign
}
