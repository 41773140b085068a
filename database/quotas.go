package database

import "context"

// DefaultTokenQuota is 5 points of 10k tokens each.
const DefaultTokenQuota int64 = 50000

type TokenUsage struct {
	Quota int64
	Used  int64
}

func (u TokenUsage) Remaining() int64 {
	if r := u.Quota - u.Used; r > 0 {
		return r
	}
	return 0
}

// GetTokenUsage falls back to the default quota when the user has no row yet.
func GetTokenUsage(ctx context.Context, userID int64) TokenUsage {
	u := TokenUsage{Quota: DefaultTokenQuota}
	err := Pool.QueryRow(ctx, `SELECT token_quota::bigint, token_used::bigint FROM token_quotas WHERE user_id=$1`, userID).
		Scan(&u.Quota, &u.Used)
	if err != nil {
		return TokenUsage{Quota: DefaultTokenQuota}
	}
	return u
}

func ChargeTokens(ctx context.Context, userID, tokens int64) error {
	_, err := Pool.Exec(ctx, `INSERT INTO token_quotas(user_id, token_quota, token_used, updated_at)
		VALUES($1,$2,$3,now())
		ON CONFLICT (user_id) DO UPDATE SET token_used = token_quotas.token_used + EXCLUDED.token_used, updated_at=now()`,
		userID, DefaultTokenQuota, tokens)
	return err
}
