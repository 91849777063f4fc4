package algebra

// violation logs an error and panics with it.
func violation(err error) {
	tracer().Errorf("%v", err)
	panic(err)
}
