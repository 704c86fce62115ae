package utils

// PanicIfNeeded hands err to the recovery middleware, which turns it into a
// ResponseData envelope.
func PanicIfNeeded(err any) {
	if err != nil {
		panic(err)
	}
}
