package funds

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/openrefdata/fundref/domain/refdata"
	"github.com/openrefdata/fundref/internal/testutil"
	"github.com/openrefdata/fundref/pkg/pagination"
)

// setupRepo provisions an isolated database for one test function.
// Skipped in short mode and when no Postgres is reachable.
func setupRepo(t *testing.T, suffix string) (*Repository, *testutil.TestDB, context.Context) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()
	tdb, err := testutil.SetupTestDB(ctx, suffix)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(tdb.Close)

	return NewRepository(tdb.DB, testutil.NewLogger()), tdb, ctx
}

// seedOwners inserts the legal and management entities the fund rows
// reference via foreign keys
func seedOwners(t *testing.T, ctx context.Context, db bun.IDB) {
	t.Helper()

	le := &refdata.LegalEntity{
		LEID:         "LE000001",
		LEI:          "529900T8BM49AURSDO55",
		LegalName:    "Nordic Asset Management AB",
		Jurisdiction: "SE",
		EntityType:   "MANAGER",
	}
	_, err := db.NewInsert().Model(le).Exec(ctx)
	require.NoError(t, err)

	me := &refdata.ManagementEntity{
		MgmtID:   "MG000001",
		LEID:     "LE000001",
		Domicile: "SE",
		Status:   "ACTIVE",
	}
	_, err = db.NewInsert().Model(me).Exec(ctx)
	require.NoError(t, err)
}

func seedFund(t *testing.T, ctx context.Context, db bun.IDB, id, code, fundType, status string) {
	t.Helper()

	f := &refdata.Fund{
		FundID:       id,
		FundCode:     code,
		FundName:     "Fund " + code,
		FundType:     fundType,
		BaseCurrency: "EUR",
		Domicile:     "LU",
		Status:       status,
		MgmtID:       "MG000001",
	}
	_, err := db.NewInsert().Model(f).Exec(ctx)
	require.NoError(t, err)
}

func seedSubFund(t *testing.T, ctx context.Context, db bun.IDB, id string, parentFund, parentSub *string) {
	t.Helper()

	sf := &refdata.SubFund{
		SubFundID:       id,
		ParentFundID:    parentFund,
		ParentSubFundID: parentSub,
		Currency:        "EUR",
		Status:          "ACTIVE",
	}
	_, err := db.NewInsert().Model(sf).Exec(ctx)
	require.NoError(t, err)
}

func strptr(s string) *string { return &s }

func TestFundRepository_SearchPagination(t *testing.T) {
	repo, tdb, ctx := setupRepo(t, "search")

	seedOwners(t, ctx, tdb.DB)

	// 7 UCITS/ACTIVE, 2 ETF/ACTIVE, 1 UCITS/CLOSED
	for i := 1; i <= 7; i++ {
		seedFund(t, ctx, tdb.DB, fmt.Sprintf("F%06d", i), fmt.Sprintf("ALPHA%03d", i), "UCITS", "ACTIVE")
	}
	seedFund(t, ctx, tdb.DB, "F000008", "BETA001", "ETF", "ACTIVE")
	seedFund(t, ctx, tdb.DB, "F000009", "BETA002", "ETF", "ACTIVE")
	seedFund(t, ctx, tdb.DB, "F000010", "ALPHA099", "UCITS", "CLOSED")

	filtered := SearchFilters{FundType: "UCITS", Status: "ACTIVE"}

	t.Run("filtered first page", func(t *testing.T) {
		p := pagination.Normalize(1, 5)
		funds, total, err := repo.Search(ctx, filtered, p)
		require.NoError(t, err)
		assert.Len(t, funds, 5)
		assert.Equal(t, 7, total)
		assert.Equal(t, 2, p.TotalPages(total))
	})

	t.Run("filtered second page holds the remainder", func(t *testing.T) {
		funds, total, err := repo.Search(ctx, filtered, pagination.Normalize(2, 5))
		require.NoError(t, err)
		assert.Len(t, funds, 2)
		assert.Equal(t, 7, total)
	})

	t.Run("page beyond range is empty, not an error", func(t *testing.T) {
		funds, total, err := repo.Search(ctx, filtered, pagination.Normalize(5, 5))
		require.NoError(t, err)
		assert.Empty(t, funds)
		assert.Equal(t, 7, total)
	})

	t.Run("no filters returns the full catalog", func(t *testing.T) {
		_, total, err := repo.Search(ctx, SearchFilters{}, pagination.Normalize(1, 100))
		require.NoError(t, err)
		assert.Equal(t, 10, total)
	})

	t.Run("each filter narrows the set", func(t *testing.T) {
		_, activeTotal, err := repo.Search(ctx, SearchFilters{Status: "ACTIVE"}, pagination.Normalize(1, 100))
		require.NoError(t, err)
		assert.Equal(t, 9, activeTotal)
		assert.LessOrEqual(t, 7, activeTotal)

		_, codeTotal, err := repo.Search(ctx, SearchFilters{FundCode: "alpha"}, pagination.Normalize(1, 100))
		require.NoError(t, err)
		assert.Equal(t, 8, codeTotal, "fund_code matching is case-insensitive substring")
	})

	t.Run("results ordered by fund id ascending", func(t *testing.T) {
		funds, _, err := repo.Search(ctx, filtered, pagination.Normalize(1, 5))
		require.NoError(t, err)
		for i := 1; i < len(funds); i++ {
			assert.Less(t, funds[i-1].FundID, funds[i].FundID)
		}
	})

	t.Run("management entity is inlined", func(t *testing.T) {
		funds, _, err := repo.Search(ctx, filtered, pagination.Normalize(1, 1))
		require.NoError(t, err)
		require.Len(t, funds, 1)
		require.NotNil(t, funds[0].ManagementEntity)
		assert.Equal(t, "MG000001", funds[0].ManagementEntity.MgmtID)
	})
}

func TestFundRepository_CreateGetRoundTrip(t *testing.T) {
	repo, tdb, ctx := setupRepo(t, "roundtrip")

	seedOwners(t, ctx, tdb.DB)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	fund := &refdata.Fund{
		FundCode:     "GLOBAL001",
		FundName:     "Global Equity Fund",
		FundType:     "UCITS",
		BaseCurrency: "EUR",
		Domicile:     "LU",
		ISINMaster:   "LU0123456789",
		Status:       "ACTIVE",
		MgmtID:       "MG000001",
	}
	require.NoError(t, repo.Create(ctx, tx.Tx, fund))
	require.NoError(t, tx.Commit())

	// ID comes from the database sequence
	require.NotEmpty(t, fund.FundID)
	assert.Equal(t, "F", fund.FundID[:1])
	assert.False(t, fund.CreatedAt.IsZero())

	t.Run("get by id returns what was written", func(t *testing.T) {
		got, err := repo.GetByID(ctx, fund.FundID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "GLOBAL001", got.FundCode)
		assert.Equal(t, "Global Equity Fund", got.FundName)
		assert.Equal(t, "LU0123456789", got.ISINMaster)
		require.NotNil(t, got.ManagementEntity)
		assert.Equal(t, "MG000001", got.ManagementEntity.MgmtID)
	})

	t.Run("get by code resolves the same row", func(t *testing.T) {
		got, err := repo.GetByCode(ctx, "GLOBAL001")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, fund.FundID, got.FundID)
	})

	t.Run("missing fund is nil without error", func(t *testing.T) {
		got, err := repo.GetLite(ctx, "F999999")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("code exists honors the exclusion", func(t *testing.T) {
		taken, err := repo.CodeExists(ctx, nil, "GLOBAL001", "")
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = repo.CodeExists(ctx, nil, "GLOBAL001", fund.FundID)
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestFundRepository_UpdateRetainsUntouchedColumns(t *testing.T) {
	_, tdb, ctx := setupRepo(t, "update")

	require.NoError(t, tdb.BeginTestTx(ctx))
	t.Cleanup(func() { _ = tdb.RollbackTestTx() })

	db := tdb.GetDB()
	txRepo := NewRepository(db, testutil.NewLogger())

	seedOwners(t, ctx, db)
	seedFund(t, ctx, db, "F000001", "GLOBAL001", "UCITS", "ACTIVE")

	fund, err := txRepo.GetLite(ctx, "F000001")
	require.NoError(t, err)
	require.NotNil(t, fund)

	fund.FundName = "Global Equity Fund II"
	fund.Status = "CLOSED"
	require.NoError(t, txRepo.Update(ctx, fund))

	got, err := txRepo.GetLite(ctx, "F000001")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Global Equity Fund II", got.FundName)
	assert.Equal(t, "CLOSED", got.Status)
	// Untouched columns survive the write
	assert.Equal(t, "GLOBAL001", got.FundCode)
	assert.Equal(t, "EUR", got.BaseCurrency)
	assert.Equal(t, "LU", got.Domicile)
	assert.Equal(t, "MG000001", got.MgmtID)
}

func TestFundRepository_Descendants(t *testing.T) {
	repo, tdb, ctx := setupRepo(t, "descendants")

	seedOwners(t, ctx, tdb.DB)
	seedFund(t, ctx, tdb.DB, "F000001", "GLOBAL001", "UCITS", "ACTIVE")
	seedFund(t, ctx, tdb.DB, "F000002", "GLOBAL002", "UCITS", "ACTIVE")

	// F000001 owns a three-level chain plus a direct sibling;
	// F000002 owns its own tree which must never leak in
	seedSubFund(t, ctx, tdb.DB, "SF000001", strptr("F000001"), nil)
	seedSubFund(t, ctx, tdb.DB, "SF000010", strptr("F000001"), nil)
	seedSubFund(t, ctx, tdb.DB, "SF000002", nil, strptr("SF000001"))
	seedSubFund(t, ctx, tdb.DB, "SF000003", nil, strptr("SF000002"))
	seedSubFund(t, ctx, tdb.DB, "SF000099", strptr("F000002"), nil)

	ids := func(nodes []refdata.HierarchyNode) []string {
		out := make([]string, len(nodes))
		for i, n := range nodes {
			out[i] = n.NodeID
		}
		return out
	}

	t.Run("depth one returns direct children only", func(t *testing.T) {
		nodes, err := repo.Descendants(ctx, "F000001", 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"SF000001", "SF000010"}, ids(nodes))
		for _, n := range nodes {
			assert.Equal(t, 1, n.Depth)
		}
	})

	t.Run("depth bounds the expansion", func(t *testing.T) {
		nodes, err := repo.Descendants(ctx, "F000001", 2)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"SF000001", "SF000010", "SF000002"}, ids(nodes))
		for _, n := range nodes {
			assert.LessOrEqual(t, n.Depth, 2)
		}
	})

	t.Run("result set grows monotonically with depth", func(t *testing.T) {
		var prev int
		for depth := 1; depth <= 4; depth++ {
			nodes, err := repo.Descendants(ctx, "F000001", depth)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(nodes), prev)
			prev = len(nodes)
		}
	})

	t.Run("full chain carries depth annotations", func(t *testing.T) {
		nodes, err := repo.Descendants(ctx, "F000001", 10)
		require.NoError(t, err)
		require.Len(t, nodes, 4)

		depths := map[string]int{}
		for _, n := range nodes {
			depths[n.NodeID] = n.Depth
			assert.Equal(t, refdata.NodeTypeSubFund, n.NodeType)
		}
		assert.Equal(t, 1, depths["SF000001"])
		assert.Equal(t, 2, depths["SF000002"])
		assert.Equal(t, 3, depths["SF000003"])

		// Ordered by depth then id
		for i := 1; i < len(nodes); i++ {
			assert.LessOrEqual(t, nodes[i-1].Depth, nodes[i].Depth)
		}
	})

	t.Run("other trees are excluded", func(t *testing.T) {
		nodes, err := repo.Descendants(ctx, "F000001", 10)
		require.NoError(t, err)
		assert.NotContains(t, ids(nodes), "SF000099")

		nodes, err = repo.Descendants(ctx, "F000002", 10)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"SF000099"}, ids(nodes))
	})

	t.Run("fund without children yields empty set", func(t *testing.T) {
		seedFund(t, ctx, tdb.DB, "F000003", "GLOBAL003", "UCITS", "ACTIVE")
		nodes, err := repo.Descendants(ctx, "F000003", 5)
		require.NoError(t, err)
		assert.Empty(t, nodes)
	})
}
