// Package builder assembles validated state models per instrument.
//
// A builder moves through three phases. It starts Empty, becomes Configuring
// after the first accepted setter and is Built once Build returns. Builders
// are single use: a second Build, or any setter after Build, fails with a
// CategoryBuilder error. Build fills every field the caller did not set with
// the instrument default, resolves detector names from a static table and
// returns a frozen model.
//
// The Registry maps (facility, instrument) pairs to move builder
// constructors.
package builder
