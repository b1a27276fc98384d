package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{Name: "Milk (1L)", Price: 60, Qty: 1},
		{Name: "Whole Wheat Bread", Price: 45, Qty: 1},
	}
	assert.Equal(t, 105, CartTotal(items))
	assert.Equal(t, 0, CartTotal(nil))
}

func TestTaskAcceptable(t *testing.T) {
	open := &VolunteerTask{Status: TaskOpen}
	assigned := &VolunteerTask{Status: TaskAssigned}
	inProgress := &VolunteerTask{Status: TaskInProgress}

	assert.True(t, open.Acceptable())
	assert.False(t, assigned.Acceptable())
	assert.False(t, inProgress.Acceptable())
}
