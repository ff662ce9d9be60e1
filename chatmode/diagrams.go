package chatmode

import "fmt"

// The builders below produce the five mermaid skeletons. Mermaid is the only
// diagram grammar this ChatMode emits (EnforceDiagramEngine /
// NoOtherDiagramFormats). Prompt and targets are substituted literally;
// callers accept that hostile input can break the mermaid syntax.

// FlowchartDiagram generates a mermaid flowchart skeleton.
func FlowchartDiagram(prompt, targets, userName string) string {
	return fmt.Sprintf(`flowchart TD
    A[Start: %s] --> B[Initialize %s]
    B --> C[Process Input]
    C --> D{Validate Input}
    D -->|Valid| E[Execute Business Logic]
    D -->|Invalid| F[Return Error]
    E --> G[Process Data]
    G --> H[Generate Response]
    H --> I[End: Success]
    F --> J[End: Error]

    subgraph "Core Processing"
        E
        G
    end

    subgraph "Error Handling"
        F
        J
    end

    style A fill:#e1f5fe
    style I fill:#c8e6c9
    style J fill:#ffcdd2

    %%%% %s
`, prompt, targets, Footer(userName))
}

// SequenceDiagram generates a mermaid sequence diagram skeleton.
func SequenceDiagram(prompt, targets, userName string) string {
	return fmt.Sprintf(`sequenceDiagram
    participant User
    participant System
    participant %s

    User->>System: %s
    System->>%s: Process Request
    %s->>System: Return Result
    System->>User: Provide Response

    Note over User,%s: %s
`, targets, prompt, targets, targets, targets, Footer(userName))
}

// ClassDiagram generates a mermaid class diagram skeleton.
func ClassDiagram(targets, userName string) string {
	return fmt.Sprintf(`classDiagram
    class %s {
        +attributes
        +methods()
    }

    class Component {
        +process()
        +validate()
    }

    %s --> Component : uses

    note "%s"
`, targets, targets, Footer(userName))
}

// ERDiagram generates a mermaid entity-relationship diagram skeleton.
func ERDiagram(userName string) string {
	return fmt.Sprintf(`erDiagram
    Entity1 ||--o{ Entity2 : relationship
    Entity1 {
        string id PK
        string name
    }
    Entity2 {
        string id PK
        string entity1_id FK
        string data
    }

    note "%s"
`, Footer(userName))
}

// StateDiagram generates a mermaid state diagram skeleton.
func StateDiagram(prompt, userName string) string {
	return fmt.Sprintf(`stateDiagram-v2
    [*] --> Initial
    Initial --> Processing : %s
    Processing --> Complete : Success
    Processing --> Error : Failure
    Error --> Processing : Retry
    Complete --> [*]

    note "%s"
`, prompt, Footer(userName))
}
