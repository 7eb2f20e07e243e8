package appointment

import (
	"github.com/kerem-haeger/PetGroom-BookingService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces for database access.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
