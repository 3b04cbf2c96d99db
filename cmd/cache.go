package cmd

// CacheCmd manages cached schemes
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"clear" help:"Remove every cached scheme"`
	Del   CacheDelCmd   `cmd:"del" aliases:"rm" help:"Delete a cached scheme"`
	List  CacheListCmd  `cmd:"list" aliases:"ls" help:"List cached schemes" default:"1"`
	Show  CacheShowCmd  `cmd:"show" help:"Show a cached scheme"`
}
