package enum_test

import (
	"fmt"

	"github.com/roach88/smartenum/enum"
)

type EmployeeType struct{ enum.Entry[int] }

var employeeTypes = enum.New[EmployeeType, int]("EmployeeType")

var (
	Manager   = employeeTypes.MustRegister(EmployeeType{enum.NewEntry("Manager", 1)})
	Assistant = employeeTypes.MustRegister(EmployeeType{enum.NewEntry("Assistant", 2)})
)

func Example() {
	e, err := employeeTypes.FromName("manager", true)
	if err != nil {
		panic(err)
	}
	fmt.Println(e, e.Value())

	bonus := enum.NewBehavior[EmployeeType, int, int](nil).
		On(Manager, func(EmployeeType) int { return 1000 }).
		On(Assistant, func(EmployeeType) int { return 500 })
	fmt.Println(bonus.Apply(Assistant))

	enum.SwitchOn[EmployeeType, int](e).
		When(Assistant).Then(func() { fmt.Println("assists") }).
		When(Manager).Then(func() { fmt.Println("manages") }).
		Default(func() { fmt.Println("unknown") })

	// Output:
	// Manager 1
	// 500
	// manages
}
