package config

// EnvYAMLs returns the conda environment YAML files shipped with the
// workflows, keyed by the variable name the workflow rules refer to.
func EnvYAMLs() map[string]string {
	return map[string]string{
		"CONDA_SHARED_ENV":      "envs/shared_environment.yaml",
		"CONDA_RNASEQ_ENV":      "envs/RNAseq_environment.yaml",
		"CONDA_DNA_MAPPING_ENV": "envs/dna_mapping.yaml",
		"CONDA_CHIPSEQ_ENV":     "envs/chip_seq.yaml",
		"CONDA_ATAC_ENV":        "envs/atac_seq.yaml",
		"CONDA_HIC_ENV":         "envs/hic_conda_env.yaml",
		"CondaEnvironment":      "envs/WGBSconda.yaml",
		"mCtCondaEnvironment":   "envs/methylCtools.yaml",
		"RmdCondaEnvironment":   "envs/Rmdconda.yaml",
	}
}
