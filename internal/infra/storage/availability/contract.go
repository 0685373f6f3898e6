package availability

import (
	"github.com/facilityops/scheduling-service/pkg/txmanager"
)

// Reuse the txmanager executor interfaces so the repository transparently
// joins a transaction carried in the context.
type DBExecutor = txmanager.DBExecutor
type TxExecutor = txmanager.TxExecutor
