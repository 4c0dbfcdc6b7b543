package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"localCache": map[string]any{
			"path": "",
		},
		"connectivity": map[string]any{
			"probeUrl": "",
		},
		"firebase": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "LOCALCACHE_PATH", want: "localCache.path"},
		{envKey: "CONNECTIVITY_PROBEURL", want: "connectivity.probeUrl"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsUnsetSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Store.OpTimeout != defaultStoreOpTimeout {
		t.Fatalf("Store.OpTimeout = %v, want %v", cfg.Store.OpTimeout, defaultStoreOpTimeout)
	}
	if cfg.LocalCache.Path != defaultLocalCachePath {
		t.Fatalf("LocalCache.Path = %q, want %q", cfg.LocalCache.Path, defaultLocalCachePath)
	}
	if cfg.Connectivity.ProbeURL != defaultProbeURL {
		t.Fatalf("Connectivity.ProbeURL = %q, want %q", cfg.Connectivity.ProbeURL, defaultProbeURL)
	}
	if cfg.Feed.RecentTransactionLimit != defaultFeedLimit {
		t.Fatalf("Feed.RecentTransactionLimit = %d, want %d", cfg.Feed.RecentTransactionLimit, defaultFeedLimit)
	}
}
