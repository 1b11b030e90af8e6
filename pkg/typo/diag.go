package typo

// OnDiagnostic, when set, receives messages for failures the package
// absorbs rather than returns: an unresolvable raw component during
// parameterized classification, and InstanceBuilder build failures.
// The sink is an external concern; the package never writes output
// itself. Nil disables notification.
var OnDiagnostic func(format string, args ...any)

func diagf(format string, args ...any) {
	if OnDiagnostic != nil {
		OnDiagnostic(format, args...)
	}
}
