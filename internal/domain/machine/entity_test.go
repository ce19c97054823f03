//go:build unit

package machine_test

import (
	"testing"

	"machine-rental/internal/domain/machine"
	"machine-rental/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMachine(t *testing.T) {
	ownerID := uuid.New()

	t.Run("valid machine", func(t *testing.T) {
		m, err := machine.NewMachine(ownerID, " Excavator 320 ", "EX-320", "20t tracked excavator", "excavation", 12500, machine.Specs{})
		require.NoError(t, err)

		assert.Equal(t, "Excavator 320", m.Name())
		assert.Equal(t, "EX-320", m.Code())
		assert.True(t, m.IsActive())
		assert.True(t, m.IsOwnedBy(ownerID))
	})

	cases := []struct {
		name     string
		mName    string
		code     string
		category string
		price    int64
		errIs    error
	}{
		{name: "empty name", mName: "  ", code: "C", category: "excavation", errIs: machine.ErrEmptyName},
		{name: "empty code", mName: "M", code: "", category: "excavation", errIs: machine.ErrEmptyCode},
		{name: "empty category", mName: "M", code: "C", category: " ", errIs: machine.ErrEmptyCategory},
		{name: "negative price", mName: "M", code: "C", category: "excavation", price: -1, errIs: machine.ErrNegativePrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := machine.NewMachine(ownerID, tc.mName, tc.code, tc.category, "", tc.price, machine.Specs{})
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestMachinePatch(t *testing.T) {
	newMachine := func(t *testing.T) *machine.Machine {
		m, err := machine.NewMachine(uuid.New(), "Scissor Lift", "SL-1", "", "access", 4000, machine.Specs{})
		require.NoError(t, err)
		return m
	}

	t.Run("nil fields untouched", func(t *testing.T) {
		m := newMachine(t)
		require.NoError(t, m.Patch(nil, nil, nil, nil, nil, nil))
		assert.Equal(t, "Scissor Lift", m.Name())
		assert.Equal(t, int64(4000), m.PricePerHourCents())
	})

	t.Run("partial update", func(t *testing.T) {
		m := newMachine(t)
		require.NoError(t, m.Patch(ptr.To("Scissor Lift XL"), nil, nil, ptr.To(int64(5500)), nil, ptr.To(false)))
		assert.Equal(t, "Scissor Lift XL", m.Name())
		assert.Equal(t, int64(5500), m.PricePerHourCents())
		assert.False(t, m.IsActive())
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		m := newMachine(t)
		assert.ErrorIs(t, m.Patch(ptr.To("  "), nil, nil, nil, nil, nil), machine.ErrEmptyName)
		assert.ErrorIs(t, m.Patch(nil, nil, nil, ptr.To(int64(-5)), nil, nil), machine.ErrNegativePrice)
	})
}

func TestSpecsNormalize(t *testing.T) {
	t.Run("drops blank entries", func(t *testing.T) {
		s := machine.Specs{
			Images:     []string{" a.jpg ", "", "b.jpg"},
			Highlights: []string{"  "},
			Location:   ptr.To("  Yard 3  "),
		}.Normalize()

		assert.Equal(t, []string{"a.jpg", "b.jpg"}, s.Images)
		assert.Nil(t, s.Highlights)
		require.NotNil(t, s.Location)
		assert.Equal(t, "Yard 3", *s.Location)
	})

	t.Run("absent stays absent", func(t *testing.T) {
		s := machine.Specs{}.Normalize()
		assert.True(t, s.IsZero())
		assert.Nil(t, s.Location)
	})
}

func TestInstance(t *testing.T) {
	t.Run("new instance is active", func(t *testing.T) {
		i, err := machine.NewInstance(uuid.New(), "EX-320-01")
		require.NoError(t, err)
		assert.Equal(t, machine.InstanceActive, i.Status())
		assert.True(t, i.IsSchedulable())
	})

	t.Run("empty code rejected", func(t *testing.T) {
		_, err := machine.NewInstance(uuid.New(), " ")
		assert.ErrorIs(t, err, machine.ErrEmptyInstanceCode)
	})

	t.Run("status lifecycle", func(t *testing.T) {
		i, err := machine.NewInstance(uuid.New(), "EX-320-01")
		require.NoError(t, err)

		require.NoError(t, i.SetStatus(machine.InstanceMaintenance))
		assert.False(t, i.IsSchedulable())
		assert.ErrorIs(t, i.SetStatus(machine.InstanceStatus("broken")), machine.ErrInvalidInstanceStatus)
	})
}
