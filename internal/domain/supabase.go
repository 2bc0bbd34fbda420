package domain

import "github.com/supabase-community/supabase-go"

// SupabaseClient wraps the connection to the Supabase project backing all
// durable storage. Single-user deployment: one service-key client, no
// per-request tokens.
type SupabaseClient interface {
	Initialize() error
	DB() *supabase.Client
}
