package day01

type ErrEmptyInputPath struct{}

func (e ErrEmptyInputPath) Error() string {
	return "input path is empty"
}
